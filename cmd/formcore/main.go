package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formcore/pkg/config"
	"github.com/goliatone/go-formcore/pkg/i18n"
	"github.com/goliatone/go-formcore/pkg/logging"
	"github.com/goliatone/go-formcore/pkg/orchestrator"
	"github.com/goliatone/go-formcore/pkg/pages"
	"github.com/goliatone/go-formcore/pkg/prompt"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/renderers/native"
	"github.com/goliatone/go-formcore/pkg/renderers/web"
	"github.com/goliatone/go-formcore/pkg/server"
)

const usage = `usage: formcore <command> [flags]

commands:
  render   render a page to stdout or a file
  prompt   fill a page interactively, then render it
  pages    list the available pages and vocabularies
  serve    start the preview server
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "formcore: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return flag.ErrHelp
	}

	switch args[0] {
	case "render":
		return runRender(ctx, args[1:], stdout, stderr)
	case "prompt":
		return runPrompt(ctx, args[1:], stdout, stderr)
	case "pages":
		return runPages(args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type commonFlags struct {
	config     string
	vocabulary string
	locale     string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "path to a YAML config file")
	fs.StringVar(&c.vocabulary, "vocabulary", "", "markup vocabulary (web or native)")
	fs.StringVar(&c.locale, "locale", "", "translation locale")
}

func (c *commonFlags) load() (config.Config, error) {
	cfg, err := config.Load(c.config)
	if err != nil {
		return config.Config{}, err
	}
	if c.vocabulary != "" {
		cfg.Vocabulary = c.vocabulary
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}
	return cfg, nil
}

func runRender(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	page := fs.String("page", "login", "page id to render")
	output := fs.String("output", "", "output file (stdout if empty)")
	dataPath := fs.String("data", "", "JSON file with page data (form values, errors, flashes)")
	csrf := fs.String("csrf", "", "CSRF token embedded in forms")
	fragment := fs.Bool("fragment", false, "skip the document layout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	data, err := readData(*dataPath)
	if err != nil {
		return err
	}
	data.CSRFToken = *csrf

	orch, _, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}
	return writeOutput(ctx, orch, cfg, *page, data, *fragment, *output, stdout)
}

func runPrompt(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prompt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	page := fs.String("page", "", "page id to fill (asked when empty)")
	output := fs.String("output", "", "output file (stdout if empty)")
	fragment := fs.Bool("fragment", false, "skip the document layout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	orch, store, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	driver := prompt.NewSurveyDriver(stderr)
	pageID := *page
	if pageID == "" {
		if pageID, err = prompt.Choose(ctx, driver, "Page", orch.Pages(), "login"); err != nil {
			return err
		}
	}
	if common.vocabulary == "" {
		if cfg.Vocabulary, err = prompt.Choose(ctx, driver, "Vocabulary", orch.Vocabularies(), cfg.Vocabulary); err != nil {
			return err
		}
	}

	definition, ok := store.Page(pageID)
	if !ok {
		return fmt.Errorf("%w: %q", orchestrator.ErrUnknownPage, pageID)
	}
	data, err := prompt.Fill(ctx, driver, definition, orch.OptionSources())
	if err != nil {
		return err
	}
	return writeOutput(ctx, orch, cfg, pageID, data, *fragment, *output, stdout)
}

func runPages(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pages", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	orch, _, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]string{
		"pages":        orch.Pages(),
		"vocabularies": orch.Vocabularies(),
	})
}

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	addr := fs.String("addr", "", "listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}

	catalog, err := newCatalog(cfg)
	if err != nil {
		return err
	}
	orch, _, err := newOrchestratorWith(cfg, catalog, logger)
	if err != nil {
		return err
	}

	srv := server.New(orch,
		server.WithLogger(logger),
		server.WithLocaleMatcher(catalog),
	)
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func newOrchestrator(cfg config.Config) (*orchestrator.Orchestrator, *pages.Store, error) {
	catalog, err := newCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	return newOrchestratorWith(cfg, catalog, zerolog.Nop())
}

func newOrchestratorWith(cfg config.Config, catalog *i18n.Catalog, logger zerolog.Logger) (*orchestrator.Orchestrator, *pages.Store, error) {
	store, err := loadPages(cfg)
	if err != nil {
		return nil, nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithPageStore(store),
		orchestrator.WithTranslator(catalog),
		orchestrator.WithDefaultVocabulary(cfg.Vocabulary),
		orchestrator.WithDefaultLocale(cfg.Locale),
		orchestrator.WithRegistry(newRegistry(cfg)),
	}
	if cfg.LayoutsDir != "" {
		options = append(options, orchestrator.WithLayoutsFS(os.DirFS(cfg.LayoutsDir)))
	}

	logger.Info().
		Strs("pages", store.IDs()).
		Str("vocabulary", cfg.Vocabulary).
		Str("locale", cfg.Locale).
		Str("method_policy", cfg.Policy().String()).
		Msg("orchestrator ready")
	return orchestrator.New(options...), store, nil
}

// newRegistry registers both vocabularies with the configured method policy,
// hidden field names and static theme tokens.
func newRegistry(cfg config.Config) *render.Registry {
	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{web.New(), native.New()} {
		options := append(cfg.RenderOptions(), render.WithTheme(cfg.ThemeFor(renderer.Name())))
		registry.MustRegister(renderer.With(options...))
	}
	return registry
}

func newCatalog(cfg config.Config) (*i18n.Catalog, error) {
	var options []i18n.Option
	if cfg.LocalesDir != "" {
		options = append(options, i18n.WithMessagesFS(os.DirFS(cfg.LocalesDir)))
	}
	return i18n.New(options...)
}

func loadPages(cfg config.Config) (*pages.Store, error) {
	if cfg.PagesDir == "" {
		return pages.Default()
	}
	return pages.LoadFS(os.DirFS(cfg.PagesDir))
}

func readData(path string) (pages.Data, error) {
	if path == "" {
		return pages.Data{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return pages.Data{}, fmt.Errorf("read data: %w", err)
	}
	var data pages.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return pages.Data{}, fmt.Errorf("decode data %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(ctx context.Context, orch *orchestrator.Orchestrator, cfg config.Config, page string, data pages.Data, fragment bool, output string, stdout io.Writer) error {
	document, err := orch.Generate(ctx, orchestrator.Request{
		Page:       page,
		Vocabulary: cfg.Vocabulary,
		Locale:     cfg.Locale,
		Data:       data,
		Fragment:   fragment,
	})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(stdout, string(document))
		return err
	}
	if err := os.WriteFile(output, document, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "Page written to %s\n", output)
	return err
}
