package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/export"
	"github.com/piwi3910/tagcloud/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layouter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env := envFromContext(ctx)
			if !cmd.Flags().Changed("addr") && env.config.ServerAddr != "" {
				addr = env.config.ServerAddr
			}

			srv := server.New(server.Options{
				Defaults: env.settings(),
				Render:   export.RenderOptionsFromConfig(env.config),
				Logger:   loggerFromContext(ctx).WithPrefix("http"),
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
