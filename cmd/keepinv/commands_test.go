package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestCommandsAreRegistered(t *testing.T) {
	is := is.New(t)
	root := newRootCmd()

	for _, name := range []string{"signin", "export", "clear-log", "stats"} {
		cmd, _, err := root.Find([]string{name})
		is.NoErr(err)
		is.True(cmd.Short != "")
	}
}

func TestSignInPrintsToken(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/auth/signin")
		w.Write([]byte(`{"token":"t0k3n"}`))
	}))
	defer server.Close()

	out, err := run(server.URL, "signin", "--email", "maria@example.com", "--password", "segredo123")
	is.NoErr(err)
	is.Equal(out, "t0k3n\n")
}

func TestExportWritesServerFilename(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/reports/inventory")
		is.Equal(r.Header.Get("Authorization"), "Bearer t0k3n")
		w.Header().Add("Content-Disposition", `attachment; filename="inventario_completo_2024-03-01.csv"`)
		w.Write([]byte("ID,Nome,Status,Sala,Setor,Bloco"))
	}))
	defer server.Close()

	dir := t.TempDir()

	out, err := run(server.URL, "--token", "t0k3n", "export", "inventory", "-o", dir)
	is.NoErr(err)

	path := filepath.Join(dir, "inventario_completo_2024-03-01.csv")
	is.Equal(strings.TrimSpace(out), path)

	b, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(b), "ID,Nome,Status,Sala,Setor,Bloco")
}

func TestExportRejectsUnknownReport(t *testing.T) {
	is := is.New(t)

	_, err := run("http://localhost:1", "export", "devices")
	is.True(err != nil)
}

func TestClearLogReportsServerNotice(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Confirmation") != "LIMPAR LOG GERAL" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"title":"Confirmação inválida","description":"Digite a frase."}`))
			return
		}
		w.Write([]byte(`{"cleared":3,"title":"Sucesso!","description":"O log de atividades foi limpo completamente."}`))
	}))
	defer server.Close()

	_, err := run(server.URL, "clear-log", "--confirm", "limpar")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "Confirmação inválida"))

	out, err := run(server.URL, "clear-log", "--confirm", "LIMPAR LOG GERAL")
	is.NoErr(err)
	is.Equal(out, "Sucesso! O log de atividades foi limpo completamente.\n")
}

func TestStatsPrintsCounters(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"counts":{"assetCount":5,"activeAssetCount":3},"statusBreakdown":[{"name":"Em Uso","value":3}],"sectorBreakdown":[]}`))
	}))
	defer server.Close()

	out, err := run(server.URL, "stats")
	is.NoErr(err)
	is.Equal(strings.Fields(strings.Split(out, "\n")[0]), []string{"Patrimônios", "5"})
	is.True(strings.Contains(out, "Em Uso"))
	is.True(!strings.Contains(out, "Por setor"))
}

func run(url string, args ...string) (string, error) {
	root := newRootCmd()

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--url", url}, args...))

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}
