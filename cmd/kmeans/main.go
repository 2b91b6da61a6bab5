package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/kmeans/infra/config"
	"github.com/drakos74/kmeans/internal/pipeline"
	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options are the positional arguments of the command.
type Options struct {
	Args struct {
		Seed     int64  `positional-arg-name:"randSeed" description:"seed of the random generator"`
		Clusters int    `positional-arg-name:"numCluster" description:"number of clusters"`
		Features int    `positional-arg-name:"numFeat" description:"number of features per row"`
		Train    string `positional-arg-name:"trainPath" description:"path of the training table"`
		Test     string `positional-arg-name:"testPath" description:"path of the test table"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	// stdout only carries the result
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// positional keeps a negative seed from being parsed as a short option.
func positional(argv []string) []string {
	if len(argv) == 0 || !strings.HasPrefix(argv[0], "-") {
		return argv
	}
	if _, err := strconv.ParseInt(argv[0], 10, 64); err != nil {
		return argv
	}
	return append([]string{"--"}, argv...)
}

func run(argv []string, out io.Writer) int {
	var options Options
	parser := flags.NewParser(&options, flags.Default)

	rest, err := parser.ParseArgs(positional(argv))
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	if len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments %v\n", rest)
		parser.WriteHelp(os.Stderr)
		return 1
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error().Err(err).Msg("could not load config")
		return 1
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Error().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
		return 1
	}
	zerolog.SetGlobalLevel(level)

	correct, err := pipeline.New(cfg).Execute(pipeline.Args{
		Seed:     options.Args.Seed,
		K:        options.Args.Clusters,
		Features: options.Args.Features,
		Train:    options.Args.Train,
		Test:     options.Args.Test,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not complete run")
		return 1
	}

	fmt.Fprintln(out, correct)
	return 0
}
