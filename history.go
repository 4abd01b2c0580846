// HistoryGuessr
//
// A host and a set of players connect to a shared room and are split into
// two teams. Each round shows a historical event; players guess where and
// when it happened, and are scored on geographic distance and year
// accuracy.
//
// Features:
// - WebSockets per game ID: /history/:gameid and /history/:gameid/ws
// - First connection to a room becomes the host; only the host can start
//   the game, end a round, or advance to the next question
// - Players pick a team (red or blue) and get a generated display name
// - Guesses are scored immediately and shown to the guesser, while the
//   shared round clock stays host-driven
// - Team progress and per-player scores broadcast to everyone after each
//   guess
// - Players identified by cookie (playerID)
// - Rooms auto-reaped after a configurable idle timeout
// - Random 8-char room IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current room, backed by go-qrcode

package main

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// roomState is the room-wide phase of the game.
type roomState int

const (
	stateAwaitingHost roomState = iota
	stateLobby
	stateInQuestion
	stateShowingResults
	stateGameOver
)

// Host command contents.
const (
	cmdGameStart    = "GAME_START"
	cmdNextQuestion = "NEXT_QUESTION"
	cmdEndRound     = "endRound"
)

// Messages coming from clients
type ClientMessage struct {
	Type    string          `json:"type"`              // "HOST_COMMAND", "GUESS", "JOIN_TEAM"
	Content string          `json:"content,omitempty"` // HOST_COMMAND payload
	Answer  json.RawMessage `json:"answer,omitempty"`  // GUESS object or JOIN_TEAM team name
}

// Guess is a player's answer to the current question. Never persisted;
// scored and discarded.
type Guess struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Year int     `json:"year"`
}

// PlayerJoinedMessage is sent to a connection as soon as it registers, so
// the client knows whether it is driving the host UI or the player UI.
type PlayerJoinedMessage struct {
	Type string `json:"type"` // "PLAYER_JOINED"
	Host bool   `json:"host"`
}

// SimpleMessage covers the payload-free notifications: CLIENT_WAIT_FOR_START,
// NEW_QUESTION, ANSWER_RESULTS, GAME_OVER.
type SimpleMessage struct {
	Type string `json:"type"`
}

// QuestionMessage carries the image for the current round.
type QuestionMessage struct {
	Type string `json:"type"` // "QUESTION"
	Img  string `json:"img"`
}

// Location is the true coordinates of a question, revealed with results.
type Location struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// DisplayAnswersMessage is sent to a guesser only: the true answer, their
// raw guess, and the score breakdown.
type DisplayAnswersMessage struct {
	Type          string   `json:"type"` // "DISPLAY_ANSWERS"
	HistoricEvent string   `json:"historicEvent"`
	GuessLng      float64  `json:"guessLng"`
	GuessLat      float64  `json:"guessLat"`
	GuessYear     int      `json:"guessYear"`
	Year          int      `json:"year"`
	Location      Location `json:"location"`
	DistanceScore int      `json:"distanceScore"`
	YearScore     int      `json:"yearScore"`
	Total         int      `json:"total"`
}

// ProgressUpdateMessage broadcasts each team's progress toward the
// session's score ceiling.
type ProgressUpdateMessage struct {
	Type         string  `json:"type"` // "PROGRESS_UPDATE"
	RedProgress  float64 `json:"redProgress"`
	BlueProgress float64 `json:"blueProgress"`
}

// PlayerScoreUpdateMessage broadcasts a player's public score snapshot
// after their guess is scored.
type PlayerScoreUpdateMessage struct {
	Type   string       `json:"type"` // "PLAYER_SCORE_UPDATE"
	Player PublicPlayer `json:"player"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type joinRequest struct {
	client *Client
	msg    ClientMessage
}

type hostCommand struct {
	client *Client
	msg    ClientMessage
}

type guessRequest struct {
	client *Client
	msg    ClientMessage
}

// Hub is one room: the sole owner of its roster, sequencer, and storage.
// All mutations happen on the run goroutine, so every read-modify-write
// against storage is serialized.
type Hub struct {
	id      string
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	joins    chan joinRequest
	commands chan hostCommand
	guesses  chan guessRequest

	mu sync.RWMutex

	lastActive time.Time

	state     roomState
	storage   RoomStorage
	roster    *Roster
	sequencer *Sequencer
}

func newHub(gameID string, catalog []Question) *Hub {
	storage := newMemoryStorage()

	return &Hub{
		id:         gameID,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		joins:      make(chan joinRequest),
		commands:   make(chan hostCommand),
		guesses:    make(chan guessRequest),
		lastActive: time.Now(),
		state:      stateAwaitingHost,
		storage:    storage,
		roster:     newRoster(storage),
		sequencer:  newSequencer(storage, catalog),
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.handleConnect(cfg, c)

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case jr := <-h.joins:
			h.handleJoinTeam(cfg, jr)

		case cmd := <-h.commands:
			h.handleHostCommand(cfg, cmd)

		case gr := <-h.guesses:
			h.handleGuess(cfg, gr)
		}
	}
}

// hostIDLocked returns the room's host identity, or "" before the first
// connection has arrived.
func (h *Hub) hostIDLocked() string {
	var hostID string
	if !getJSON(h.storage, keyHostID, &hostID) {
		return ""
	}
	return hostID
}

// handleConnect classifies a new connection: the first identity ever seen
// becomes the host, fixed for the room's lifetime; everyone else is a
// player. Connecting never changes room-wide state beyond leaving the
// awaiting-host phase, and the roster only gains the connection once it
// sends JOIN_TEAM.
func (h *Hub) handleConnect(cfg *Config, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	hostID := h.hostIDLocked()
	if hostID == "" {
		hostID = c.playerID
		putJSON(h.storage, keyHostID, hostID)
		if h.state == stateAwaitingHost {
			h.state = stateLobby
		}
		logf(cfg, "GAMES: Host %s claimed room %s", c.playerID, h.id)
	}

	h.clients[c] = true

	h.sendLocked(c, PlayerJoinedMessage{
		Type: "PLAYER_JOINED",
		Host: hostID == c.playerID,
	})
}

// handleJoinTeam processes "JOIN_TEAM" messages.
func (h *Hub) handleJoinTeam(cfg *Config, jr joinRequest) {
	c := jr.client

	var team string
	if err := json.Unmarshal(jr.msg.Answer, &team); err != nil {
		return
	}
	if team != teamRed && team != teamBlue {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// One roster entry per identity; players never leave within a room.
	if _, ok := h.roster.findPlayer(c.playerID); ok {
		return
	}

	player := Player{
		ID:     c.playerID,
		Name:   randomDisplayName(),
		Team:   team,
		IsHost: c.playerID == h.hostIDLocked(),
	}
	h.roster.addPlayer(team, player)

	logf(cfg, "GAMES: Player %q joined team %s in %s", player.Name, team, h.id)

	h.sendLocked(c, SimpleMessage{Type: "CLIENT_WAIT_FOR_START"})
}

// handleGuess scores a player's guess against the cached current question.
// A guess with no current question (lobby, or the game is over) is a race
// with the host, not an error: it is dropped without a reply.
func (h *Hub) handleGuess(cfg *Config, gr guessRequest) {
	c := gr.client

	var guess Guess
	if err := json.Unmarshal(gr.msg.Answer, &guess); err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if h.state == stateGameOver {
		return
	}

	question, ok := h.sequencer.cachedQuestion()
	if !ok {
		return
	}

	score := scoreGuess(question, guess)

	player, ok := h.roster.applyScore(c.playerID, score.Total)
	if !ok {
		return
	}

	logf(cfg, "GAMES: Player %q scored %d (%d dist, %d year) in %s",
		player.Name, score.Total, score.DistanceScore, score.YearScore, h.id)

	h.sendLocked(c, DisplayAnswersMessage{
		Type:          "DISPLAY_ANSWERS",
		HistoricEvent: question.Name,
		GuessLng:      guess.Long,
		GuessLat:      guess.Lat,
		GuessYear:     guess.Year,
		Year:          question.Year,
		Location:      Location{Lat: question.Lat, Long: question.Long},
		DistanceScore: score.DistanceScore,
		YearScore:     score.YearScore,
		Total:         score.Total,
	})

	h.broadcastLocked(h.progressUpdateLocked())

	h.broadcastLocked(PlayerScoreUpdateMessage{
		Type: "PLAYER_SCORE_UPDATE",
		Player: PublicPlayer{
			ID:    player.ID,
			Name:  player.Name,
			Team:  player.Team,
			Score: player.CumulativeScore,
		},
	})
}

// progressUpdateLocked recomputes both teams' progress fractions from the
// authoritative per-player sums.
func (h *Hub) progressUpdateLocked() ProgressUpdateMessage {
	scores := h.roster.teamCumulativeScores()
	rounds := h.sequencer.totalRounds()

	progress := func(score, count int) float64 {
		if count < 1 {
			count = 1
		}
		if rounds == 0 {
			return 0
		}
		return float64(score) / float64(1000*rounds*count)
	}

	return ProgressUpdateMessage{
		Type:         "PROGRESS_UPDATE",
		RedProgress:  progress(scores.RedScore, scores.RedCount),
		BlueProgress: progress(scores.BlueScore, scores.BlueCount),
	}
}

// handleHostCommand processes host commands: start the game, end the
// round, advance to the next question. Commands from any other connection
// are dropped without a reply.
func (h *Hub) handleHostCommand(cfg *Config, cmd hostCommand) {
	c := cmd.client

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	hostID := h.hostIDLocked()
	if hostID == "" || c.playerID != hostID {
		return
	}

	switch cmd.msg.Content {
	case cmdGameStart:
		question, ok := h.sequencer.reset()
		if !ok {
			h.gameOverLocked(cfg)
			return
		}
		h.state = stateInQuestion
		logf(cfg, "GAMES: Game started in %s", h.id)
		h.broadcastQuestionLocked(question)

	case cmdNextQuestion:
		if h.state == stateGameOver {
			return
		}
		question, ok := h.sequencer.advance()
		if !ok {
			h.gameOverLocked(cfg)
			return
		}
		h.state = stateInQuestion
		h.broadcastQuestionLocked(question)

	case cmdEndRound:
		if h.state != stateInQuestion {
			return
		}
		h.state = stateShowingResults
		h.broadcastLocked(SimpleMessage{Type: "ANSWER_RESULTS"})
	}
}

func (h *Hub) broadcastQuestionLocked(question Question) {
	h.broadcastLocked(SimpleMessage{Type: "NEW_QUESTION"})
	h.broadcastLocked(QuestionMessage{Type: "QUESTION", Img: question.Img})
}

func (h *Hub) gameOverLocked(cfg *Config) {
	h.state = stateGameOver
	logf(cfg, "GAMES: Game over in %s", h.id)
	h.broadcastLocked(SimpleMessage{Type: "GAME_OVER"})
}

// sendLocked delivers msg to one client, evicting it if its send buffer is
// full. Clients already evicted have a closed send channel and are skipped.
// Assumes h.mu is held.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

// broadcastLocked fans msg out to every connection in the room. Delivery
// is fire-and-forget: a slow client is evicted without blocking the rest.
// Assumes h.mu is held.
func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "historyguessr_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated room. Different rooms run fully in parallel; within
// a room, the hub goroutine serializes everything.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	catalog     []Question
	idleTimeout time.Duration
}

func newGameManager(catalog []Question, idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		catalog:     catalog,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID, gm.catalog)
	gm.hubs[gameID] = hub
	go hub.run(cfg)
	return hub
}

// newGameID generates a crypto-random room ID and ensures it doesn't
// collide with existing rooms.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than
// idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		// A malformed body is dropped, not fatal: the connection keeps
		// serving whatever it sends next.
		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "JOIN_TEAM":
			h.joins <- joinRequest{
				client: c,
				msg:    msg,
			}
		case "HOST_COMMAND":
			h.commands <- hostCommand{
				client: c,
				msg:    msg,
			}
		case "GUESS":
			h.guesses <- guessRequest{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current room URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the room URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func serveGamePage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write([]byte(newPage("HistoryGuessr", "Connect a HistoryGuessr client to this room's /ws endpoint to play.")))
	}
}

// redirectNewGame handles GET /path by generating a new random room ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created room %s/%s", path, gameID)
		http.Redirect(w, r, path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerHistoryGame sets up routes so that:
//   - $path                  → redirects to new random room (8-char ID)
//   - $path/:gameid          → room landing page
//   - $path/:gameid/ws       → WebSocket for that room
//   - $path/:gameid/qr       → PNG QR code for that room URL
func registerHistoryGame(cfg *Config, path string, mux *httprouter.Router) {
	gm := newGameManager(historicEvents, cfg.sessionTimeout)

	// Root path → redirect to new random room
	mux.GET(path, redirectNewGame(cfg, path, gm))

	// Per-room landing page
	mux.GET(cfg.prefix+path+"/:gameid", serveGamePage(cfg))

	// Per-room websocket
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	// Per-room QR code
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)
}
