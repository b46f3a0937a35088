// shogimate1 generates, verifies, renders and catalogs Shogi mate-in-1 puzzles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/herohde/shogimate1/pkg/catalog"
	"github.com/herohde/shogimate1/pkg/config"
	"github.com/herohde/shogimate1/pkg/gen"
	"github.com/herohde/shogimate1/pkg/quality"
	"github.com/herohde/shogimate1/pkg/render"
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/herohde/shogimate1/pkg/shogi/sfen"
	"github.com/herohde/shogimate1/pkg/solver"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "generate":
		runGenerate(ctx, args)
	case "verify":
		runVerify(ctx, args)
	case "test":
		runTest(ctx, args)
	case "render":
		runRender(ctx, args)
	case "create":
		runCreate(ctx, args)
	case "list":
		runList(ctx, args)
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: shogimate1 <command> [options]

Commands:
  generate   sample or assemble candidate mate-in-1 positions
  verify     run a full mate-in-1 search on a position
  render     draw a position as a diagram
  create     save a position to the puzzle catalog
  test       re-verify catalog entries
  list       list or search the puzzle catalog
  version    print the build version
`)
}

func loadConfig(ctx context.Context, path string) config.Config {
	cfg, err := config.Load(ctx, path)
	if err != nil {
		logw.Exitf(ctx, "invalid configuration: %v", err)
	}
	return cfg
}

func mustDecodeSFEN(ctx context.Context, s string) *shogi.Board {
	b, _, err := sfen.Decode(s)
	if err != nil {
		logw.Exitf(ctx, "invalid sfen %q: %v", s, err)
	}
	return b
}

func runGenerate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	method := fs.String("method", "random", "Generation method: random or reverse")
	n := fs.Int("n", 1, "Number of positions to generate")
	maxPieces := fs.Int("max-pieces", 0, "Maximum pieces on the board (0 uses the config default)")
	seed := fs.Int64("seed", 1, "Random seed")
	allowMultiple := fs.Bool("allow-multiple", false, "Accept positions with more than one mate-in-1 solution")
	configPath := fs.String("config", "config.toml", "Path to the configuration file")
	fs.Parse(args)

	cfg := loadConfig(ctx, *configPath)
	pieces := *maxPieces
	if pieces == 0 {
		pieces = cfg.Generation.MaxPieces
	}
	criteria := quality.Criteria{RequireUnique: !*allowMultiple, MinPieces: 3, MaxPieces: pieces}

	var positions []*shogi.Board
	switch *method {
	case "random":
		budget := lang.Some(gen.AttemptBudget{Max: cfg.Generation.MaxAttempts})
		positions = gen.GenerateRandom(ctx, *seed, *n, pieces, criteria, budget)
	case "reverse":
		positions = gen.GenerateFromTemplates(ctx, *seed, *n, criteria)
	default:
		logw.Exitf(ctx, "unknown generation method %q", *method)
	}

	for i, b := range positions {
		fmt.Printf("%v\n", sfen.Encode(b, 1))
		metrics := quality.Calculate(b)
		logw.Infof(ctx, "position %v: pieces=%v legal=%v checking=%v mate=%v difficulty=%.2f",
			i+1, metrics.TotalPieces, metrics.LegalMoves, metrics.CheckingMoves, metrics.MateMoves, metrics.DifficultyScore)
	}
}

func runVerify(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	sfenStr := fs.String("sfen", "", "SFEN position to verify (required)")
	fs.Parse(args)

	if *sfenStr == "" {
		logw.Exitf(ctx, "verify: -sfen is required")
	}
	b := mustDecodeSFEN(ctx, *sfenStr)

	result := solver.Verify(b)
	fmt.Printf("is_mate=%v is_unique=%v mate_count=%v\n", result.IsMate, result.IsUnique, result.MateCount)
	shogi.SortByPriority(result.Moves, shogi.CapturePriority(b))
	for _, m := range result.Moves {
		fmt.Printf("  %v\n", m)
	}
}

// runTest re-verifies catalog entries against the solver, the way a composer re-checks a saved
// puzzle after a rules change: -index limits the run to a single entry, otherwise every saved
// puzzle is re-checked and a pass/fail count is reported.
func runTest(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	index := fs.Int("index", -1, "Index into the catalog to re-verify (-1 re-verifies all entries)")
	configPath := fs.String("config", "config.toml", "Path to the configuration file")
	fs.Parse(args)

	cfg := loadConfig(ctx, *configPath)
	store, err := catalog.NewStore(cfg.Catalog.Dir)
	if err != nil {
		logw.Exitf(ctx, "open catalog: %v", err)
	}

	puzzles, err := store.All(ctx)
	if err != nil {
		logw.Exitf(ctx, "read catalog: %v", err)
	}
	if *index >= 0 {
		if *index >= len(puzzles) {
			logw.Exitf(ctx, "test: index %v out of range (catalog has %v entries)", *index, len(puzzles))
		}
		puzzles = puzzles[*index : *index+1]
	}

	passed := 0
	for _, p := range puzzles {
		b, _, err := sfen.Decode(p.SFEN)
		if err != nil {
			fmt.Printf("FAIL %v (%v): invalid sfen: %v\n", p.ID, p.Name, err)
			continue
		}
		result := solver.Verify(b)
		if result.IsMate {
			passed++
			fmt.Printf("PASS %v (%v)\n", p.ID, p.Name)
		} else {
			fmt.Printf("FAIL %v (%v): no mate-in-1 found\n", p.ID, p.Name)
		}
	}
	fmt.Printf("%v/%v passed\n", passed, len(puzzles))
}

func runRender(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	sfenStr := fs.String("sfen", "", "SFEN position to render (required)")
	svgPath := fs.String("svg", "", "Output SVG path (if unset, only the ASCII diagram is printed)")
	fs.Parse(args)

	if *sfenStr == "" {
		logw.Exitf(ctx, "render: -sfen is required")
	}
	b := mustDecodeSFEN(ctx, *sfenStr)

	fmt.Print(b)

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			logw.Exitf(ctx, "create %v: %v", *svgPath, err)
		}
		defer f.Close()
		render.Board(f, b)
	}
}

func runCreate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	sfenStr := fs.String("sfen", "", "SFEN position to save (required)")
	name := fs.String("name", "", "Puzzle name")
	description := fs.String("description", "", "Puzzle description")
	author := fs.String("author", "", "Puzzle author")
	tags := fs.String("tags", "", "Comma-separated tags")
	force := fs.Bool("force", false, "Save even if the position is not a mate-in-1")
	allowMultiple := fs.Bool("allow-multiple", false, "Save even if the mate-in-1 solution is not unique")
	configPath := fs.String("config", "config.toml", "Path to the configuration file")
	fs.Parse(args)

	if *sfenStr == "" {
		logw.Exitf(ctx, "create: -sfen is required")
	}
	b := mustDecodeSFEN(ctx, *sfenStr)

	result := solver.Verify(b)
	if !result.IsMate && !*force {
		logw.Exitf(ctx, "create: %v has no mate-in-1 solution; pass -force to save anyway", *sfenStr)
	}
	if result.IsMate && !result.IsUnique && !*allowMultiple {
		logw.Exitf(ctx, "create: %v has %v mate-in-1 solutions, not a unique one; pass -allow-multiple to save anyway", *sfenStr, result.MateCount)
	}

	cfg := loadConfig(ctx, *configPath)
	store, err := catalog.NewStore(cfg.Catalog.Dir)
	if err != nil {
		logw.Exitf(ctx, "open catalog: %v", err)
	}

	var tagList []string
	if *tags != "" {
		tagList = strings.Split(*tags, ",")
	}

	p, err := store.Save(ctx, *sfenStr, *name, *description, *author, tagList)
	if err != nil {
		logw.Exitf(ctx, "save puzzle: %v", err)
	}
	fmt.Printf("saved %v: %v\n", p.ID, p.Name)
}

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query := fs.String("query", "", "Search query over name/description/author")
	tags := fs.String("tags", "", "Comma-separated tags to filter by")
	verbose := fs.Bool("verbose", false, "Print description and creation time alongside each entry")
	configPath := fs.String("config", "config.toml", "Path to the configuration file")
	fs.Parse(args)

	cfg := loadConfig(ctx, *configPath)
	store, err := catalog.NewStore(cfg.Catalog.Dir)
	if err != nil {
		logw.Exitf(ctx, "open catalog: %v", err)
	}

	var tagList []string
	if *tags != "" {
		tagList = strings.Split(*tags, ",")
	}

	puzzles, err := store.Search(ctx, *query, tagList)
	if err != nil {
		logw.Exitf(ctx, "search catalog: %v", err)
	}
	for _, p := range puzzles {
		fmt.Printf("%v\t%v\t%v\t%v\n", p.ID, p.Name, p.SFEN, strings.Join(p.Tags, ","))
		if *verbose {
			fmt.Printf("\t%v\t%v\t%v\n", p.Description, p.Author, p.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	}
}
