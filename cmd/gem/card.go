package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/gem/internal/config"
	"github.com/AlexZinkM/gem/internal/model"
	"github.com/AlexZinkM/gem/internal/session"
)

type cardOptions struct {
	amount        string
	message       string
	sender        string
	recipient     string
	contact       string
	txids         string
	importAddress string
	height        uint64
	offline       bool
}

func newCardCommand() *cobra.Command {
	opts := &cardOptions{}
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Make one gift card and save it as JPEG",
		Long: "Generates a fresh wallet and saves its gift card into GEM_EXPORT_DIR.\n" +
			"With --import-address the card is built for an existing wallet and the seed is read from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runCard(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.amount, "amount", "", "gift amount in XMR (default GEM_DEFAULT_AMOUNT)")
	f.StringVar(&opts.message, "message", "", "personal message")
	f.StringVar(&opts.sender, "sender", "", "sender name")
	f.StringVar(&opts.recipient, "recipient", "", "recipient name")
	f.StringVar(&opts.contact, "contact", "", "contact line")
	f.StringVar(&opts.txids, "txids", "", "comma separated funding transaction ids (imported wallets only)")
	f.StringVar(&opts.importAddress, "import-address", "", "build the card for this existing address")
	f.Uint64Var(&opts.height, "height", 0, "restore height of the imported wallet")
	f.BoolVar(&opts.offline, "offline", false, "skip block height and price lookups")
	return cmd
}

func runCard(ctx context.Context, cmd *cobra.Command, opts *cardOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := newSession(cfg, logger, opts.offline)
	if err != nil {
		return err
	}

	edit := session.Edit{}
	for name, dst := range map[string]**string{
		"amount":    &edit.Amount,
		"message":   &edit.Message,
		"sender":    &edit.Sender,
		"recipient": &edit.Recipient,
		"contact":   &edit.Contact,
	} {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}

	if opts.importAddress == "" {
		if err := s.Boot(ctx); err != nil {
			return err
		}
		if err := s.Edit(edit); err != nil {
			return err
		}
	} else {
		if err := s.SetMode(ctx, model.ModeImported); err != nil {
			return err
		}
		seed, err := config.PromptForSeed()
		if err != nil {
			return err
		}
		edit.Address = &opts.importAddress
		edit.Seed = &seed
		edit.TxIDs = &opts.txids
		edit.BlockHeight = &opts.height
		if err := s.Edit(edit); err != nil {
			return err
		}
		if err := s.UpdateQR(); err != nil {
			return err
		}
	}

	path, err := s.Save()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
