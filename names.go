package main

import "crypto/rand"

// Word lists for generated display names. Players never type a name; they
// get a pronounceable one when they pick a team.
var (
	nameAdjectives = []string{
		"amber", "bold", "brave", "calm", "clever", "crimson", "daring",
		"eager", "fearless", "gentle", "golden", "keen", "lively", "lucky",
		"mighty", "noble", "quick", "quiet", "rapid", "royal", "silent",
		"silver", "swift", "vivid", "wild", "wise",
	}
	nameNouns = []string{
		"badger", "bison", "condor", "cougar", "falcon", "ferret", "gecko",
		"heron", "ibex", "jackal", "lemur", "lynx", "marmot", "mole",
		"otter", "owl", "panther", "puffin", "raven", "salmon", "stoat",
		"tapir", "viper", "walrus", "weasel", "wolf",
	}
)

func randomIndex(n int) int {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return int(b[0]) % n
}

// randomDisplayName builds an adjective-noun name like "swift-otter".
func randomDisplayName() string {
	return nameAdjectives[randomIndex(len(nameAdjectives))] +
		"-" + nameNouns[randomIndex(len(nameNouns))]
}
