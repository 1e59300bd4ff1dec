package main

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/powellquiring/motus/dic"
	"github.com/powellquiring/motus/game"
	"github.com/powellquiring/motus/motus"
	"github.com/powellquiring/motus/player"
	"github.com/powellquiring/motus/ui"
)

type configuredAction func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error

func playCommand(withConfig func(configuredAction) cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play solo rounds: find the word from its first letter within 12 guesses",
		Action: withConfig(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
			term := ui.NewTerminal(os.Stdin, os.Stdout, gc.color)
			g := game.NewSoloGame(gc.store, gc.rng)
			err := g.Play(term, player.NewHumanPlayer(term))
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return err
		}),
	}
}

// randomSolutions draws n solutions. length 0 draws a length among the
// store lengths within the game bounds for each one.
func randomSolutions(gc GlobalConfiguration, n, length int) ([]string, error) {
	var lengths []int
	if length == 0 {
		for _, l := range gc.store.Lengths() {
			if l >= game.DefaultMinLength && l <= game.DefaultMaxLength {
				lengths = append(lengths, l)
			}
		}
		if len(lengths) == 0 {
			return nil, dic.ErrNoWords
		}
	}
	solutions := make([]string, 0, n)
	for range n {
		l := length
		if l == 0 {
			l = lengths[gc.rng.IntN(len(lengths))]
		}
		solution, err := gc.store.RandomWord(gc.rng, l)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

func botCommand(withConfig func(configuredAction) cli.ActionFunc) *cli.Command {
	rounds := 0
	length := 0
	bots := 0
	strategy := ""
	progress := false
	verbose := false
	return &cli.Command{
		Name: "bot",
		Usage: `bot [--rounds N] [--length L] [--strategy random|min] [--bots K] [SOLUTION ...]
		K bots sharing one universe of candidates play each round in turn. Solutions are drawn from the
		dictionary unless given as arguments. Prints how many games were won in each number of guesses.
		`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rounds", Aliases: []string{"n"}, Value: 100, Usage: "number of rounds to draw", Destination: &rounds},
			&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Usage: "word length, 0 draws one per round", Destination: &length},
			&cli.IntFlag{Name: "bots", Aliases: []string{"k"}, Value: 1, Usage: "bots sharing the universe", Destination: &bots},
			&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Value: "min", Usage: "random or min", Destination: &strategy},
			&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show progress bar", Destination: &progress},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print every game", Destination: &verbose},
			&cli.StringSliceFlag{
				Name:    "first",
				Aliases: []string{"f"},
				Usage:   "--first first1 --first first2 ... opening guesses of each bot, skipped when the length does not fit",
			},
		},
		Action: withConfig(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
			if bots < 1 {
				return cli.Exit("need at least one bot", 2)
			}
			newStrategy, err := player.StrategyFactory(strategy, gc.rng)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			openings := upper(cmd.StringSlice("first"))
			solutions := upper(cmd.Args().Slice())
			if len(solutions) == 0 {
				if solutions, err = randomSolutions(gc, rounds, length); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}

			var bar *progressbar.ProgressBar
			if progress {
				bar = progressbar.Default(int64(len(solutions)))
			} else {
				bar = progressbar.DefaultSilent(int64(len(solutions)))
			}
			results, err := game.Simulate(gc.store, solutions, botFactory(newStrategy, bots, openings), game.DefaultGuesses, func() { _ = bar.Add(1) })
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			printResults(results, verbose)
			return nil
		}),
	}
}

// botFactory builds the bots of a round. They share the round universe and,
// when openings are given, one Openings so no opening is played twice.
func botFactory(newStrategy func() player.Strategy, bots int, openings []string) game.NewBots {
	return func(u *motus.Universe) []player.Player {
		var book *player.Openings
		if len(openings) > 0 {
			book = player.NewOpenings(openings)
		}
		players := make([]player.Player, 0, bots)
		for range bots {
			s := newStrategy()
			if book != nil {
				s = player.NewOpeningStrategy(book, s)
			}
			players = append(players, player.NewBotPlayer(s, u))
		}
		return players
	}
}

func upper(words []string) []string {
	ret := make([]string, len(words))
	for i, w := range words {
		ret[i] = strings.ToUpper(w)
	}
	return ret
}

func printGame(g game.Game) {
	fmt.Print(g.Solution, ":")
	for _, guess := range g.Guesses {
		fmt.Print(" ", guess)
	}
	fmt.Println()
}

func printResults(results *game.Results, verbose bool) {
	fmt.Println("---------------------")
	for _, numGuesses := range results.Counts() {
		games := results.ByGuesses[numGuesses]
		fmt.Println(numGuesses, len(games), " ---------------------")
		if verbose {
			for _, g := range games {
				printGame(g)
			}
		}
	}
	fmt.Println("lost", len(results.Lost), " ---------------------")
	for _, g := range results.Lost {
		printGame(g)
	}
	fmt.Printf("played %d, mean guesses %.2f\n", results.Played(), results.Mean())
}

func hintCommand() *cli.Command {
	return &cli.Command{
		Name:      "hint",
		Usage:     "print the hint a guess gets for a solution",
		ArgsUsage: "SOLUTION GUESS",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("must have a solution and a guess", 2)
			}
			solution := strings.ToUpper(cmd.Args().Get(0))
			guess := strings.ToUpper(cmd.Args().Get(1))
			_, hint := motus.Evaluate(solution, guess)
			fmt.Println(hint)
			return nil
		},
	}
}

func firstCommand(withConfig func(configuredAction) cli.ActionFunc) *cli.Command {
	length := 0
	top := 0
	return &cli.Command{
		Name: "first",
		Usage: `first --length L
		Sort the words of length L as first guesses by the total number of candidates they leave
		`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: game.DefaultMinLength, Usage: "word length", Destination: &length},
			&cli.IntFlag{Name: "top", Aliases: []string{"t"}, Value: 20, Usage: "number of words to print, 0 is all scored words", Destination: &top},
			&cli.IntFlag{Name: "limit", Value: player.DefaultGuessLimit, Usage: "number of words scored"},
		},
		Action: withConfig(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
			words := gc.store.WithLength(length)
			if len(words) == 0 {
				return cli.Exit(fmt.Sprintf("%v: length %d", dic.ErrNoWords, length), 1)
			}
			s := &player.MinRemainingStrategy{Limit: int(cmd.Int("limit"))}
			sortedGuessScores := s.SortedGuesses(motus.NewUniverse(words))
			for printed := 0; sortedGuessScores.Len() > 0 && (top == 0 || printed < top); printed++ {
				item := heap.Pop(sortedGuessScores).(player.Item)
				fmt.Println(item.Value, item.Score)
			}
			return nil
		}),
	}
}

func narrowCommand(withConfig func(configuredAction) cli.ActionFunc) *cli.Command {
	length := 0
	return &cli.Command{
		Name: "narrow",
		Usage: `narrow the dictionary by entering pairs of [guess hint]...
		Hints use R (right), M (misplaced) and W (wrong). Prints a suggested next guess and the remaining candidates.
		`,
		ArgsUsage: "GUESS HINT ...",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Usage: "word length, the first guess length by default", Destination: &length},
		},
		Action: withConfig(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
			if cmd.NArg()%2 != 0 {
				return cli.Exit("must have pairs of guess hint", 1)
			} else if cmd.NArg() < 2 {
				return cli.Exit("must have at least one guess hint", 2)
			}
			args := cmd.Args().Slice()
			l := length
			if l == 0 {
				l = len(args[0])
			}
			candidates, err := narrowPairs(gc.store.WithLength(l), args)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if len(candidates) == 0 {
				return cli.Exit(player.ErrNoCandidates.Error(), 3)
			}
			next, err := player.NewMinRemainingStrategy().Guess(motus.NewUniverse(candidates))
			if err != nil {
				return cli.Exit(err.Error(), 3)
			}
			fmt.Print(next, ":")
			for _, word := range candidates {
				fmt.Print(" ", word)
			}
			fmt.Println()
			return nil
		}),
	}
}

// narrowPairs narrows candidates through each guess/hint pair of args.
func narrowPairs(candidates []string, args []string) ([]string, error) {
	for i := 0; i+1 < len(args); i += 2 {
		guess := strings.ToUpper(args[i])
		hint, err := motus.ParseHintFor(guess, args[i+1])
		if err != nil {
			return nil, err
		}
		candidates = motus.Narrow(candidates, guess, hint)
	}
	return candidates, nil
}

func convertCommand(opts *options) *cli.Command {
	outType := ""
	return &cli.Command{
		Name:      "convert",
		Usage:     "read a dictionary file and write it in another format, keeping its shape in YAML",
		ArgsUsage: "IN OUT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out-filetype", Usage: "output file type, inferred from the extension by default", Destination: &outType},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("must have an input and an output file", 2)
			}
			in := *opts
			in.dicPath = cmd.Args().Get(0)
			store, err := loadStore(&in)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := store.Check(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := dic.Write(store, cmd.Args().Get(1), outType); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Printf("%d words, %s\n", store.Len(), store.Shape())
			return nil
		},
	}
}
