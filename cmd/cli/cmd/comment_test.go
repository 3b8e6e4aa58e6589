package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestCommentCommand_Success(t *testing.T) {
	resetViper()

	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST method, got %s", r.Method)
		}
		if r.URL.Path != "/rest/api/3/issue/PROJ-123/comment" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"10100","created":"2024-01-15T10:30:00.000+0000"}`))
	}))
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("email", "dev@example.com")
	viper.Set("token", "test-token")

	output, err := runCommand("comment", "PROJ-123", "deployed to staging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"body":{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"deployed to staging"}]}]}}`
	if received != expected {
		t.Errorf("unexpected comment payload:\n got: %s\nwant: %s", received, expected)
	}
	if !strings.Contains(output, "Comment 10100 added to PROJ-123") {
		t.Errorf("expected confirmation, got: %s", output)
	}
}

func TestCommentCommand_Simulated(t *testing.T) {
	resetViper()
	viper.Set("simulate", true)

	output, err := runCommand("comment", "DEMO-123", "dry run comment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "added to DEMO-123") {
		t.Errorf("expected confirmation, got: %s", output)
	}
}

func TestCommentCommand_RequiresTextArgument(t *testing.T) {
	resetViper()
	viper.Set("token", "test-token")

	_, err := runCommand("comment", "PROJ-123")
	if err == nil {
		t.Error("expected error when no comment text provided")
	}
}
