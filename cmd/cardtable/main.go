package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"cardtable/deck"
	"cardtable/game"
	"cardtable/server"
)

func main() {
	hostMode := flag.Bool("host", false, "host a table and print an invite link")
	join := flag.String("join", "", "invite URL of a table to join")
	flag.Parse()

	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		tr   server.Transport
		role game.Role
	)
	switch {
	case *hostMode:
		role = game.RoleHost
		lst := server.NewListener(cfg.ListenAddr, uuid.NewString())
		lst.Start()
		log.Printf("hosting on %s", cfg.ListenAddr)
		fmt.Println("invite link:", lst.InviteURL())
		fmt.Println("waiting for opponent...")
		tr, err = lst.Accept(ctx)
		if err != nil {
			log.Fatal(err)
		}
		defer lst.Shutdown(context.Background())
		fmt.Println("opponent connected")
	case *join != "":
		role = game.RoleGuest
		tr, err = server.Dial(ctx, *join)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("connected to host")
	default:
		fmt.Fprintln(os.Stderr, "usage: cardtable -host | -join <invite-url>")
		os.Exit(2)
	}
	defer tr.Close()

	s := server.NewSession(role, cfg.PlayerName, tr)
	s.OnNotice = func(kind, text string) { fmt.Printf("[%s] %s\n", kind, text) }
	s.OnAction = func(n server.ActionNotice) { fmt.Printf("[action] %s %s\n", n.Player, n.Type) }
	s.OnReveal = func(n server.RevealNotice) {
		names := make([]string, 0, len(n.Cards))
		for _, c := range n.Cards {
			names = append(names, c.Name)
		}
		fmt.Printf("[reveal] from %s: %s\n", n.FromZone, strings.Join(names, ", "))
	}
	go s.Run(ctx)

	if role == game.RoleHost {
		s.StartGame()
	}

	fmt.Println("type 'help' for commands")
	repl(ctx, s, cfg)
}

func repl(ctx context.Context, s *server.Session, cfg server.Config) {
	in := bufio.NewScanner(os.Stdin)
	prompt := func() { fmt.Print("> ") }
	prompt()
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			prompt()
			continue
		}
		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "deck":
			if len(args) < 2 {
				fmt.Println("usage: deck <file>")
				break
			}
			loadDeckFile(ctx, s, cfg, args[1])
		case "draw":
			s.Do(game.ActionDraw, game.ActionPayload{Count: optInt(args, 1, 1)})
		case "move":
			if len(args) < 4 {
				fmt.Println("usage: move <cardId> <from> <to> [tapped] [facedown] [bottom]")
				break
			}
			p := game.ActionPayload{CardID: args[1], From: game.Zone(args[2]), To: game.Zone(args[3])}
			for _, a := range args[4:] {
				switch a {
				case "tapped":
					p.Tapped = true
				case "facedown":
					p.FaceDown = true
				case "bottom":
					p.Index = game.InsertBottom
				}
			}
			s.Do(game.ActionMoveCard, p)
		case "tap":
			s.Do(game.ActionTap, game.ActionPayload{CardID: arg(args, 1)})
		case "flip":
			s.Do(game.ActionFlip, game.ActionPayload{CardID: arg(args, 1)})
		case "phaseout":
			s.Do(game.ActionPhaseToggle, game.ActionPayload{CardID: arg(args, 1)})
		case "note":
			if len(args) < 2 {
				fmt.Println("usage: note <cardId> [text]")
				break
			}
			s.Do(game.ActionSetNote, game.ActionPayload{CardID: args[1], Note: strings.Join(args[2:], " ")})
		case "life":
			n := optInt(args, 1, 20)
			s.Do(game.ActionSetLife, game.ActionPayload{Life: &n})
		case "poison":
			n := optInt(args, 1, 0)
			s.Do(game.ActionSetPoison, game.ActionPayload{Poison: &n})
		case "counter":
			if len(args) < 2 {
				fmt.Println("usage: counter <cardId> [type] [delta]")
				break
			}
			p := game.ActionPayload{CardID: args[1]}
			if len(args) > 2 {
				p.CounterType = args[2]
			}
			if len(args) > 3 {
				p.Delta, _ = strconv.Atoi(args[3])
			}
			s.Do(game.ActionAddCounter, p)
		case "token":
			p := game.ActionPayload{Name: arg(args, 1)}
			if len(args) > 2 {
				p.PT = args[2]
			}
			s.Do(game.ActionCreateToken, p)
		case "clone":
			s.Do(game.ActionCloneCard, game.ActionPayload{CardID: arg(args, 1)})
		case "shuffle":
			s.Do(game.ActionShuffle, game.ActionPayload{})
		case "mulligan":
			s.Do(game.ActionMulligan, game.ActionPayload{Count: optInt(args, 1, 0)})
		case "untap":
			s.Do(game.ActionUntapAll, game.ActionPayload{})
		case "scry":
			// scry c1,c2 c3  → c1,c2 to the top in order, c3 to the bottom
			p := game.ActionPayload{}
			if len(args) > 1 && args[1] != "-" {
				p.Top = strings.Split(args[1], ",")
			}
			if len(args) > 2 && args[2] != "-" {
				p.Bottom = strings.Split(args[2], ",")
			}
			s.Do(game.ActionScryResolve, p)
		case "search":
			if len(args) < 3 {
				fmt.Println("usage: search <cardId> <zone>")
				break
			}
			s.Do(game.ActionSearchLibrary, game.ActionPayload{CardID: args[1], To: game.Zone(args[2])})
		case "turn":
			s.Do(game.ActionNextTurn, game.ActionPayload{})
		case "phase":
			if len(args) < 2 {
				fmt.Println("usage: phase <name>")
				break
			}
			s.Do(game.ActionSetPhase, game.ActionPayload{Phase: game.Phase(args[1])})
		case "pass":
			s.Do(game.ActionPassPriority, game.ActionPayload{})
		case "roll":
			s.Roll(optInt(args, 1, 6))
		case "coin":
			s.Coin()
		case "say":
			s.Chat(strings.Join(args[1:], " "))
		case "state":
			printState(s)
		case "end":
			s.EndGame()
		default:
			fmt.Println("unknown command; try 'help'")
		}
		prompt()
	}
}

func loadDeckFile(ctx context.Context, s *server.Session, cfg server.Config, path string) {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read deck:", err)
		return
	}
	list := deck.Parse(string(text))
	fmt.Printf("resolving %d main / %d sideboard entries...\n", len(list.Main), len(list.Sideboard))

	client := deck.NewClient(cfg.CardAPIBase)
	resolved, err := client.Resolve(ctx, append(append([]deck.Entry{}, list.Main...), list.Sideboard...))
	if err != nil {
		fmt.Println("resolve deck:", err)
		return
	}

	cards, missing := deck.Build(list.Main, resolved)
	side, missingSide := deck.Build(list.Sideboard, resolved)
	for _, name := range append(missing, missingSide...) {
		fmt.Println("not found:", name)
	}
	if len(cards) == 0 {
		fmt.Println("no cards resolved; deck not loaded")
		return
	}

	s.Do(game.ActionLoadDeck, game.ActionPayload{Cards: cards, Sideboard: side})
	fmt.Printf("loaded %d cards (%d sideboard)\n", len(cards), len(side))
}

func printState(s *server.Session) {
	s.Inspect(func(state *game.GameState, mirror *game.Mirror) {
		switch {
		case state != nil:
			t := state.Turn
			fmt.Printf("turn %d  phase %s  active %s  priority %s\n", t.Number, t.Phase, t.ActivePlayer, t.Priority)
			for _, role := range []game.Role{game.RoleHost, game.RoleGuest} {
				p := state.Players[role]
				fmt.Printf("%s %q: life %d poison %d | lib %d hand %d bf %d gy %d ex %d sb %d\n",
					role, p.Name, p.Life, p.Poison,
					len(p.Library), len(p.Hand), len(p.Battlefield),
					len(p.Graveyard), len(p.Exile), len(p.Sideboard))
				printBattlefield(p.Battlefield, state.Cards)
			}
		case mirror != nil:
			t := mirror.Turn
			fmt.Printf("turn %d  phase %s  active %s  priority %s\n", t.Number, t.Phase, t.ActivePlayer, t.Priority)
			for _, role := range []game.Role{game.RoleHost, game.RoleGuest} {
				p := mirror.Players[role]
				if p == nil {
					continue
				}
				fmt.Printf("%s %q: life %d poison %d | lib %d hand %d bf %d gy %d ex %d sb %d\n",
					role, p.Name, p.Life, p.Poison,
					p.LibraryCount, p.HandCount, len(p.Battlefield),
					len(p.Graveyard), len(p.Exile), len(p.Sideboard))
				printBattlefield(p.Battlefield, mirror.Cards)
			}
		default:
			fmt.Println("(no game)")
		}
	})
}

func printBattlefield(entries []game.BattlefieldEntry, cards map[string]game.CardInstance) {
	for _, e := range entries {
		name := cards[e.CardID].Name
		flags := ""
		if e.Tapped {
			flags += " tapped"
		}
		if e.FaceDown {
			flags += " facedown"
			name = "(face down)"
		}
		if e.PhasedOut {
			flags += " phased"
		}
		fmt.Printf("  %s %s%s", e.CardID, name, flags)
		for ctype, n := range e.Counters {
			fmt.Printf(" [%s x%d]", ctype, n)
		}
		if e.Note != "" {
			fmt.Printf(" (%s)", e.Note)
		}
		fmt.Println()
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func optInt(args []string, i, def int) int {
	if i >= len(args) {
		return def
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}
	return n
}

func printHelp() {
	fmt.Print(`commands:
  deck <file>                      load a deck list and draw an opening hand
  draw [n]                         draw cards
  move <id> <from> <to> [tapped] [facedown] [bottom]
  tap|flip|phaseout|clone <id>
  note <id> [text]                 set or clear a card note
  life <n> / poison <n>            absolute set
  counter <id> [type] [delta]
  token [name] [p/t]
  shuffle / mulligan [n] / untap
  scry <top-ids|-> [bottom-ids|-]  comma-separated ids
  search <id> <zone>
  turn / phase <name> / pass
  roll [sides] / coin / say <text>
  state / end / quit
`)
}
