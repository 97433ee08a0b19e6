// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/mock"
	"github.com/MKhiriev/go-locker/internal/service"
	"github.com/MKhiriev/go-locker/internal/store"
)

var testCredentials = config.Credentials{
	Token:             "jwt",
	SessionKey:        "session-key",
	ExportKey:         "export-key",
	RecoveryExportKey: "recovery-export-key",
}

// newTestApp builds an App over a mocked client service. Output is
// captured in the returned buffer.
func newTestApp(t *testing.T, command ...string) (*App, *mock.MockLockerClientService, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockLockerClientService(ctrl)

	app, err := NewApp(&service.ClientServices{LockerService: svc}, &config.ClientConfig{
		Credentials: testCredentials,
		Command:     command,
	}, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app.out = out
	app.in = strings.NewReader("")
	return app, svc, out
}

func expectAuth(svc *mock.MockLockerClientService) {
	svc.EXPECT().Authenticate("jwt", "session-key").Return(nil)
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestRun_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t, "sync")

	assert.ErrorIs(t, app.Run(context.Background()), ErrUnknownCommand)
}

func TestRun_MissingSession(t *testing.T) {
	app, _, _ := newTestApp(t, cmdLoad)
	app.credentials.Token = ""

	assert.ErrorIs(t, app.Run(context.Background()), ErrNoSessionConfig)
}

func TestSave_FromArgument(t *testing.T) {
	app, svc, out := newTestApp(t, cmdSave, "-pad", `{"label":"notes"}`, "my secret")
	expectAuth(svc)
	svc.EXPECT().SaveLocker(gomock.Any(), "export-key", []byte("my secret"), crypto.Object{"label": crypto.String("notes")}).Return(nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "locker saved\n", out.String())
}

func TestSave_FromStdin(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdSave, "-")
	app.in = strings.NewReader("piped secret")
	expectAuth(svc)
	svc.EXPECT().SaveLocker(gomock.Any(), "export-key", []byte("piped secret"), crypto.Object{}).Return(nil)

	require.NoError(t, app.Run(context.Background()))
}

func TestSave_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("file secret"), 0o600))

	app, svc, _ := newTestApp(t, cmdSave, "-file", path)
	expectAuth(svc)
	svc.EXPECT().SaveLocker(gomock.Any(), "export-key", []byte("file secret"), gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background()))
}

func TestSave_InvalidPad(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdSave, "-pad", `{"a":null}`, "x")
	expectAuth(svc)

	assert.ErrorIs(t, app.Run(context.Background()), crypto.ErrSerialization)
}

func TestSave_MissingExportKey(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdSave, "x")
	app.credentials.ExportKey = ""
	expectAuth(svc)

	assert.ErrorIs(t, app.Run(context.Background()), ErrMissingKey)
}

func TestLoad_PrintsLockerAndPad(t *testing.T) {
	app, svc, out := newTestApp(t, cmdLoad, "-show-pad")
	expectAuth(svc)
	svc.EXPECT().LoadLocker(gomock.Any(), "export-key", crypto.FormatString).Return(crypto.Plaintext{
		Data:                 "my secret",
		PublicAdditionalData: crypto.Object{"b": crypto.Number(1), "a": crypto.Bool(true)},
	}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "my secret\n{\"a\":true,\"b\":1}\n", out.String())
}

func TestLoad_NotFound(t *testing.T) {
	app, svc, out := newTestApp(t, cmdLoad, "-format", "bytes")
	expectAuth(svc)
	svc.EXPECT().LoadLocker(gomock.Any(), "export-key", crypto.FormatBytes).Return(crypto.Plaintext{}, store.ErrLockerNotFound)

	assert.ErrorIs(t, app.Run(context.Background()), store.ErrLockerNotFound)
	assert.Empty(t, out.String())
}

func TestLoad_BadFormat(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdLoad, "-format", "hex")
	expectAuth(svc)

	assert.ErrorIs(t, app.Run(context.Background()), crypto.ErrUnsupportedOutputFormat)
}

func TestSetupRecovery(t *testing.T) {
	app, svc, out := newTestApp(t, cmdSetupRecovery)
	expectAuth(svc)
	svc.EXPECT().SetupRecovery(gomock.Any(), "export-key", "recovery-export-key").Return(nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "recovery set up\n", out.String())
}

func TestSetupRecovery_MissingRecoveryKey(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdSetupRecovery)
	app.credentials.RecoveryExportKey = " "
	expectAuth(svc)

	assert.ErrorIs(t, app.Run(context.Background()), ErrMissingKey)
}

func TestRemoveRecovery(t *testing.T) {
	app, svc, out := newTestApp(t, cmdRemoveRecovery)
	expectAuth(svc)
	svc.EXPECT().RemoveRecovery(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "recovery removed\n", out.String())
}

func TestRecover(t *testing.T) {
	app, svc, out := newTestApp(t, cmdRecover)
	expectAuth(svc)
	svc.EXPECT().RecoverLocker(gomock.Any(), "recovery-export-key", crypto.FormatString).
		Return(crypto.Plaintext{Data: "recovered"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "recovered", out.String())
}

func TestRecover_TooManyAttempts(t *testing.T) {
	app, svc, _ := newTestApp(t, cmdRecover)
	expectAuth(svc)
	svc.EXPECT().RecoverLocker(gomock.Any(), gomock.Any(), gomock.Any()).Return(crypto.Plaintext{}, service.ErrTooManyAttempts)

	assert.ErrorIs(t, app.Run(context.Background()), service.ErrTooManyAttempts)
}

func TestLogout(t *testing.T) {
	app, svc, out := newTestApp(t, cmdLogout)
	expectAuth(svc)
	svc.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "logged out\n", out.String())
}

func TestVersion_NeedsNoSession(t *testing.T) {
	app, svc, out := newTestApp(t, cmdVersion)
	app.credentials = config.Credentials{}
	svc.EXPECT().ServerVersion(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "server version: 1.2.3\n", out.String())
}
