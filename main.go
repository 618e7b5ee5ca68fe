package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gef_pif_generator/config"
	"gef_pif_generator/generator"
	"gef_pif_generator/pipeline"
	"gef_pif_generator/server"
)

const defaultCountry = "Cuba"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		saveOnly   bool
		renderOnly bool
		serve      bool
		addr       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "pifgen [country]",
		Short:         "Draft, verify, and render GEF-8 PIF sections for a country",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			country := defaultCountry
			if len(args) > 0 {
				country = args[0]
			}
			if saveOnly && renderOnly {
				return errors.New("--save-only and --render-only are mutually exclusive")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()
			log := logger.Sugar()

			client, err := buildClient(cfg)
			if err != nil {
				return err
			}
			agent, err := generator.NewAgent(client, cfg.ExpandCountryPlaceholder())
			if err != nil {
				return err
			}
			store := pipeline.NewStore(cfg.OutDir)

			if serve {
				srv, err := server.New(agent, store, cfg, log)
				if err != nil {
					return err
				}
				listen := cfg.ServerAddr
				if addr != "" {
					listen = addr
				}
				if listen == "" {
					listen = ":8080"
				}
				log.Infow("starting server", "addr", listen)
				return http.ListenAndServe(listen, srv.Routes())
			}

			p := pipeline.New(agent, store, cfg, log)

			if renderOnly {
				pdf, err := p.RenderOnly(country)
				if err != nil {
					return err
				}
				fmt.Println(pdf)
				return nil
			}

			out, err := p.Run(cmd.Context(), country)
			if err != nil {
				return err
			}
			if saveOnly {
				fmt.Println(store.Path(country))
				return nil
			}
			pdf, err := p.Render(out)
			if err != nil {
				return err
			}
			fmt.Println(pdf)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config/config.json", "path to config.json")
	cmd.Flags().BoolVar(&saveOnly, "save-only", false, "persist the run output and skip rendering")
	cmd.Flags().BoolVar(&renderOnly, "render-only", false, "render a previously persisted run output without model calls")
	cmd.Flags().BoolVar(&serve, "serve", false, "start the JSON API server")
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address when --serve (overrides config.server_addr)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

func buildClient(cfg config.Config) (generator.Client, error) {
	settings := &generator.Settings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAIClient(settings)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible interface; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAIClient(settings)
	case "mock":
		return generator.MockClient{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
