package wifiprof

import (
	"github.com/arthur-debert/wifiprof/pkg/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		listen    string
		uploadDir string
		active    string
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(flagOverrides(map[string]string{
				"server.listen":         listen,
				"server.upload_dir":     uploadDir,
				"server.active_profile": active,
			}))
			if err != nil {
				return err
			}

			srv, err := server.Build(server.Options{Config: cfg.Server})
			if err != nil {
				return err
			}

			log.Info().
				Str("upload_dir", cfg.Server.UploadDir).
				Msg("Starting profile server")

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", MsgFlagListen)
	cmd.Flags().StringVar(&uploadDir, "upload-dir", "", MsgFlagUploadDir)
	cmd.Flags().StringVar(&active, "active", "", MsgFlagActive)

	return cmd
}
