// Package demo is the shared harness for the runnable examples. It owns flag
// parsing, configuration, the shared model client and the step-by-step pacing
// so each example file contains only its demonstration code.
package demo

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aschepis/chainkit/config"
	"github.com/aschepis/chainkit/embedding"
	"github.com/aschepis/chainkit/llm"
	"github.com/aschepis/chainkit/logger"
)

// Step is one numbered demonstration within an example.
type Step struct {
	Title string
	Run   func(ctx context.Context, env *Env) error
}

// Env gives steps access to shared dependencies. Model and Embedder are
// resolved lazily so examples that never call a provider do not require one.
type Env struct {
	Logger zerolog.Logger
	Config *config.Config

	model    *llm.ChatModel
	embedder embedding.Embedder
}

// Model returns the shared chat model, building it on first use.
func (e *Env) Model(opts ...llm.ModelOption) (*llm.ChatModel, error) {
	if e.model == nil {
		model, err := config.BuildModel(e.Config, e.Logger)
		if err != nil {
			return nil, err
		}
		e.model = model
	}
	if len(opts) == 0 {
		return e.model, nil
	}
	return e.model.With(opts...), nil
}

// Embedder returns the shared embedder, building it on first use.
func (e *Env) Embedder() (embedding.Embedder, error) {
	if e.embedder == nil {
		embedder, err := config.BuildEmbedder(e.Config, e.Logger)
		if err != nil {
			return nil, err
		}
		e.embedder = embedder
	}
	return e.embedder, nil
}

// Run executes the example: it wires up config and logging, runs every step
// in order and paces them with an Enter prompt. A failed step is reported and
// the remaining steps still run.
func Run(title string, steps []Step) {
	noPause := flag.Bool("no-pause", false, "run all steps without waiting for Enter")
	logLevel := flag.String("log", "", "override LOG_LEVEL for this run")
	flag.Parse()

	if *logLevel != "" {
		os.Setenv("LOG_LEVEL", *logLevel)
	}

	config.LoadEnv()

	log, err := logger.InitWithOptions("", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	log = log.With().Str("run_id", uuid.NewString()).Str("example", title).Logger()

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	env := &Env{Logger: log, Config: cfg}
	ctx := context.Background()

	Banner(title)
	if config.Offline() {
		Note("offline mode: responses come from a scripted fake client")
	}

	failures := 0
	for i, step := range steps {
		Section(i+1, len(steps), step.Title)

		started := time.Now()
		if err := step.Run(ctx, env); err != nil {
			failures++
			Errorf("step failed: %v", err)
			log.Warn().Err(err).Str("step", step.Title).Msg("Demo step failed")
		} else {
			log.Debug().
				Str("step", step.Title).
				Dur("elapsed", time.Since(started)).
				Msg("Demo step finished")
		}

		if i < len(steps)-1 && !*noPause {
			pause()
		}
	}

	Done(len(steps)-failures, len(steps))
}

// pause waits for Enter so output can be read between steps.
func pause() {
	fmt.Print(promptStyle.Render("Press Enter to continue..."))
	reader := bufio.NewReader(os.Stdin)
	if _, err := reader.ReadString('\n'); err != nil {
		// Stdin is closed or not a terminal; stop pausing.
		fmt.Println()
	}
}
