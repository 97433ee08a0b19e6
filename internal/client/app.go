// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/service"
)

const (
	cmdSave           = "save"
	cmdLoad           = "load"
	cmdSetupRecovery  = "setup-recovery"
	cmdRemoveRecovery = "remove-recovery"
	cmdRecover        = "recover"
	cmdLogout         = "logout"
	cmdVersion        = "version"
)

const usage = `usage: locker-client [flags] <command> [command flags]

commands:
  save [-pad JSON] [-file PATH | DATA]   encrypt and upload the locker (DATA or stdin)
  load [-format string|bytes] [-show-pad] download and decrypt the locker
  setup-recovery                          store a recovery lockbox for the export key
  remove-recovery                         revoke the recovery lockbox
  recover [-format string|bytes]          open the locker in a recovery session
  logout                                  close the session
  version                                 print the server version
`

type App struct {
	services    *service.ClientServices
	credentials config.Credentials
	command     []string

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || services.LockerService == nil {
		return nil, errors.New("client services are not initialised")
	}

	return &App{
		services:    services,
		credentials: cfg.Credentials,
		command:     cfg.Command,
		in:          os.Stdin,
		out:         os.Stdout,
		logger:      logger,
	}, nil
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	if len(a.command) == 0 {
		_, _ = io.WriteString(a.out, usage)
		return ErrNoCommand
	}

	name, args := a.command[0], a.command[1:]
	log := a.logger.With().Str("command", name).Logger()
	log.Debug().Msg("running command")

	var err error
	switch name {
	case cmdVersion:
		err = a.version(ctx)
	case cmdSave, cmdLoad, cmdSetupRecovery, cmdRemoveRecovery, cmdRecover, cmdLogout:
		if err = a.authenticate(); err != nil {
			break
		}
		err = a.dispatch(ctx, name, args)
	default:
		_, _ = io.WriteString(a.out, usage)
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	if err != nil {
		log.Err(err).Msg("command failed")
	}
	return err
}

func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case cmdSave:
		return a.save(ctx, args)
	case cmdLoad:
		return a.load(ctx, args)
	case cmdSetupRecovery:
		return a.setupRecovery(ctx, args)
	case cmdRemoveRecovery:
		return a.removeRecovery(ctx, args)
	case cmdRecover:
		return a.recover(ctx, args)
	default:
		return a.logout(ctx, args)
	}
}

func (a *App) authenticate() error {
	if a.credentials.Token == "" || a.credentials.SessionKey == "" {
		return ErrNoSessionConfig
	}
	return a.services.LockerService.Authenticate(a.credentials.Token, a.credentials.SessionKey)
}

func (a *App) save(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdSave)
	padJSON := fs.String("pad", "{}", "public additional data as JSON")
	file := fs.String("file", "", "read the locker data from a file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return ErrTooManyArgs
	}

	exportKey, err := requireKey(a.credentials.ExportKey, "export key")
	if err != nil {
		return err
	}

	pad, err := crypto.ParseValue([]byte(*padJSON))
	if err != nil {
		return fmt.Errorf("pad: %w", err)
	}

	data, err := a.readData(*file, fs.Arg(0))
	if err != nil {
		return err
	}

	if err = a.services.LockerService.SaveLocker(ctx, exportKey, data, pad); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "locker saved")
	return err
}

// readData picks the locker data: a file, the positional argument, or
// stdin when neither is given or the argument is "-".
func (a *App) readData(file, arg string) ([]byte, error) {
	switch {
	case file != "":
		return os.ReadFile(file)
	case arg != "" && arg != "-":
		return []byte(arg), nil
	default:
		return io.ReadAll(a.in)
	}
}

func (a *App) load(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdLoad)
	format := fs.String("format", "string", "output format: string or bytes")
	showPad := fs.Bool("show-pad", false, "print the public additional data after the locker")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outputFormat, err := crypto.ParseOutputFormat(*format)
	if err != nil {
		return err
	}
	exportKey, err := requireKey(a.credentials.ExportKey, "export key")
	if err != nil {
		return err
	}

	plaintext, err := a.services.LockerService.LoadLocker(ctx, exportKey, outputFormat)
	if err != nil {
		return err
	}

	return a.printPlaintext(plaintext, *showPad)
}

func (a *App) setupRecovery(ctx context.Context, args []string) error {
	if err := newFlagSet(cmdSetupRecovery).Parse(args); err != nil {
		return err
	}

	exportKey, err := requireKey(a.credentials.ExportKey, "export key")
	if err != nil {
		return err
	}
	recoveryExportKey, err := requireKey(a.credentials.RecoveryExportKey, "recovery export key")
	if err != nil {
		return err
	}

	if err = a.services.LockerService.SetupRecovery(ctx, exportKey, recoveryExportKey); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "recovery set up")
	return err
}

func (a *App) removeRecovery(ctx context.Context, args []string) error {
	if err := newFlagSet(cmdRemoveRecovery).Parse(args); err != nil {
		return err
	}

	if err := a.services.LockerService.RemoveRecovery(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "recovery removed")
	return err
}

func (a *App) recover(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdRecover)
	format := fs.String("format", "string", "output format: string or bytes")
	showPad := fs.Bool("show-pad", false, "print the public additional data after the locker")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outputFormat, err := crypto.ParseOutputFormat(*format)
	if err != nil {
		return err
	}
	recoveryExportKey, err := requireKey(a.credentials.RecoveryExportKey, "recovery export key")
	if err != nil {
		return err
	}

	plaintext, err := a.services.LockerService.RecoverLocker(ctx, recoveryExportKey, outputFormat)
	if err != nil {
		return err
	}

	return a.printPlaintext(plaintext, *showPad)
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := newFlagSet(cmdLogout).Parse(args); err != nil {
		return err
	}

	if err := a.services.LockerService.Logout(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) version(ctx context.Context) error {
	v, err := a.services.LockerService.ServerVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "server version: %s\n", v)
	return err
}

func (a *App) printPlaintext(plaintext crypto.Plaintext, showPad bool) error {
	if _, err := a.out.Write(plaintext.Bytes()); err != nil {
		return err
	}
	if !showPad || plaintext.PublicAdditionalData == nil {
		return nil
	}

	pad, err := crypto.Canonicalize(plaintext.PublicAdditionalData)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "\n%s\n", pad)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func requireKey(key, name string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, name)
	}
	return key, nil
}
