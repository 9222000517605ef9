package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		inputFile, outputFile = "", ""
		sourceLang, targetLang = "English", "Spanish"
		dialect, tone, plurality = "", "", ""
		swapLangs, printPrompt = false, false
		optionsJSON = false
		for _, c := range []string{"provider", "model", "base-url", "api-key"} {
			_ = rootCmd.PersistentFlags().Set(c, rootCmd.PersistentFlags().Lookup(c).DefValue)
			rootCmd.PersistentFlags().Lookup(c).Changed = false
		}
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTranslateCmd_PrintPrompt(t *testing.T) {
	out, err := runRoot(t, "",
		"translate", "--print-prompt",
		"--from", "English", "--to", "Spanish",
		"--plurality", "plural", "--dialect", "Mexican Spanish", "--tone", "formal",
		"Hello")
	require.NoError(t, err)

	assert.Contains(t, out, "[system]\nYou are a professional human translator")
	assert.Contains(t, out, "Translate the following text from English to Spanish. Use the Mexican Spanish dialect. The tone should be formal. Ensure the translation is plural. Preserve meaning and cultural nuance. Do not explain the translation.\nText:\n\"\"\"Hello\"\"\"")
}

func TestTranslateCmd_DialectTag(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: "es-MX", want: "Use the Mexican Spanish dialect."},
		{dialect: "es-ar", want: "Use the Argentinian Spanish dialect."},
		{dialect: "Rioplatense", want: "Use the Rioplatense dialect."},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			out, err := runRoot(t, "", "translate", "--print-prompt", "--dialect", tt.dialect, "Hello")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestTranslateCmd_Swap(t *testing.T) {
	out, err := runRoot(t, "", "translate", "--print-prompt", "--from", "English", "--to", "French", "--swap", "Bonjour")
	require.NoError(t, err)
	assert.Contains(t, out, "from French to English.")
}

func TestTranslateCmd_MissingText(t *testing.T) {
	_, err := runRoot(t, "", "translate", "--print-prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields: text")
}

func TestTranslateCmd_Ollama(t *testing.T) {
	var gotPrompt atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) == 2 {
			gotPrompt.Store(req.Messages[1].Content)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": map[string]string{"role": "assistant", "content": "Hola"},
			"done":    true,
		})
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "out", "es.txt")
	_, err := runRoot(t, "Hello",
		"translate", "--provider", "ollama", "--model", "llama3.2", "--base-url", server.URL,
		"--from", "English", "--to", "Spanish", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Hola", string(data))
	prompt, _ := gotPrompt.Load().(string)
	assert.True(t, strings.HasSuffix(prompt, "Text:\n\"\"\"Hello\"\"\""), prompt)
}

func TestTranslateCmd_CompletionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := runRoot(t, "",
		"translate", "--provider", "ollama", "--base-url", server.URL, "Hello")
	require.Error(t, err)
	assert.Equal(t, "translation failed", err.Error())
}

func TestOptionsCmd(t *testing.T) {
	out, err := runRoot(t, "", "options")
	require.NoError(t, err)
	assert.Contains(t, out, "Mexican Spanish")
	assert.Contains(t, out, "es-MX")
	assert.Contains(t, out, "formal")
}
