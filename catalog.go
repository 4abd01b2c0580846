package main

// Question is one entry in the historic-events catalog: an event the
// players must place in space and time.
type Question struct {
	Name string  `json:"name"`
	Desc string  `json:"desc"`
	Img  string  `json:"img"`
	Year int     `json:"year"`
	Long float64 `json:"long"`
	Lat  float64 `json:"lat"`
}

// historicEvents is the ordered, read-only question catalog. Rooms never
// mutate it; the sequencer only indexes into it.
var historicEvents = []Question{
	{
		Name: "Battle of Berlin",
		Desc: "Soviet offensive and capture of the German capital",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/b/b1/Raising_a_flag_over_the_Reichstag_-_Restoration.jpg",
		Year: 1945,
		Long: 13.3762,
		Lat:  52.5186,
	},
	{
		Name: "Assassination of Archduke Franz Ferdinand",
		Desc: "Assassination leading to World War I",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/0/09/Assassination_of_Archduke_Franz_Ferdinand.jpg",
		Year: 1914,
		Long: 20.4633,
		Lat:  44.8167,
	},
	{
		Name: "Stock Market Crash",
		Desc: "Beginning of the Great Depression; Wall Street collapse",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/0/0b/1929_stock_market_crash.jpg",
		Year: 1929,
		Long: -74.0060,
		Lat:  40.7128,
	},
	{
		Name: "Attack on Pearl Harbor",
		Desc: "Japanese attack on U.S. naval base leading to U.S. entry into WWII",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/2/29/Pearl_Harbor_attack.jpg",
		Year: 1941,
		Long: -157.9394,
		Lat:  21.3546,
	},
	{
		Name: "D-Day",
		Desc: "Allied invasion of Normandy, pivotal in liberating France in WWII",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/a/a4/NormandyLST.jpg",
		Year: 1944,
		Long: -0.8204,
		Lat:  49.4144,
	},
	{
		Name: "Battle of Dien Bien Phu",
		Desc: "Decisive battle leading to the end of French rule in Vietnam",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/f/f7/French_prisoners_after_the_battle_of_Dien_Bien_Phu.jpg",
		Year: 1954,
		Long: 103.1500,
		Lat:  21.3833,
	},
	{
		Name: "Gulf of Tonkin Incident",
		Desc: "Incident that escalated U.S. involvement in the Vietnam War",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/a/a2/USS_Maddox_DD-731.jpg",
		Year: 1964,
		Long: 108.3239,
		Lat:  16.0726,
	},
	{
		Name: "Tet Offensive",
		Desc: "Major North Vietnamese and Viet Cong assault during the Vietnam War",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/9/9b/TetOffensiveSaigon.jpg",
		Year: 1968,
		Long: 106.6297,
		Lat:  10.8231,
	},
	{
		Name: "Fall of Saigon",
		Desc: "Final battle of the Vietnam War leading to U.S. withdrawal and unification of Vietnam",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/f/f4/Fall_of_Saigon.jpg",
		Year: 1975,
		Long: 106.6297,
		Lat:  10.8231,
	},
	{
		Name: "Hiroshima Bombing",
		Desc: "First atomic bomb dropped on Hiroshima by the U.S., ending WWII",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/8/87/Atomic_bombing_of_Hiroshima.jpg",
		Year: 1945,
		Long: 132.4553,
		Lat:  34.3853,
	},
	{
		Name: "Cuban Missile Crisis",
		Desc: "13-day confrontation between the U.S. and the Soviet Union over nuclear missiles in Cuba",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/e/e9/President_Kennedy_addresses_the_nation_on_Cuban_missile_crisis.jpg",
		Year: 1962,
		Long: -82.3666,
		Lat:  23.1136,
	},
	{
		Name: "Moon Landing",
		Desc: "First human moon landing by Apollo 11 mission",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/a/a1/Apollo_11_first_steps.jpg",
		Year: 1969,
		Long: -23.4733,
		Lat:  0.6731,
	},
	{
		Name: "Berlin Airlift",
		Desc: "Soviet blockade of West Berlin overcome by Allied airlift",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/f/f4/C-54s_unloading_at_Tempelhof_Airport_Berlin_1948.jpg",
		Year: 1948,
		Long: 13.4061,
		Lat:  52.5206,
	},
	{
		Name: "Fall of the Berlin Wall",
		Desc: "Symbolic end of the Cold War and East-West divide in Europe",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/f/fd/Fall_of_the_Berlin_Wall.jpg",
		Year: 1989,
		Long: 13.3762,
		Lat:  52.5163,
	},
	{
		Name: "Indian Independence",
		Desc: "End of British rule in India and creation of independent India and Pakistan",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/7/7f/Mahatma_Gandhi%2C_Jawaharlal_Nehru_and_Sardar_Patel.jpg",
		Year: 1947,
		Long: 77.2167,
		Lat:  28.6667,
	},
	{
		Name: "Fall of the Soviet Union",
		Desc: "Official dissolution of the Soviet Union and end of the Cold War",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/a/ad/RedSquareBasilCathedral.jpg",
		Year: 1991,
		Long: 37.6176,
		Lat:  55.7558,
	},
	{
		Name: "Nelson Mandela's Release from Prison",
		Desc: "End of apartheid era and beginning of democratic transition in South Africa",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/8/8f/Mandela_Walter_Sisulu.jpg",
		Year: 1990,
		Long: 18.4233,
		Lat:  -33.9186,
	},
	{
		Name: "9/11 Attacks",
		Desc: "Terrorist attacks on the World Trade Center and the Pentagon",
		Img:  "https://upload.wikimedia.org/wikipedia/commons/9/91/September_11_photo_montage.jpg",
		Year: 2001,
		Long: -74.0134,
		Lat:  40.7115,
	},
}
