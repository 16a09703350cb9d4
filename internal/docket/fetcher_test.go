package docket

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const docketHTML = `<html><body>
<div id="tblDocket12">
  <div class="row g-0"><div>Description</div><div>Aggravated Assault</div></div>
</div>
</body></html>`

func TestFetchSuccess(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()

		if ua := r.Header.Get("User-Agent"); ua == "" || ua == "Go-http-client/1.1" {
			t.Errorf("expected browser user-agent, got %q", ua)
		}
		if r.Header.Get("Referer") == "" {
			t.Error("expected Referer header to be set")
		}

		fmt.Fprint(w, docketHTML)
	}))
	defer server.Close()

	f := New(server.URL + "/caseInfo.asp?caseNumber=")
	page, err := f.Fetch("CR2025-123456")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	if gotPath != "/caseInfo.asp?caseNumber=CR2025-123456" {
		t.Errorf("case number should be appended verbatim, got %q", gotPath)
	}
	if page.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", page.StatusCode)
	}
	if page.Doc == nil {
		t.Fatal("expected parsed document for 200 response")
	}
	if phrase := page.FailurePhrase(); phrase != "" {
		t.Errorf("clean page should have no failure phrase, got %q", phrase)
	}
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := New(server.URL + "?caseNumber=")
	page, err := f.Fetch("CR2025-123456")
	if err != nil {
		t.Fatalf("non-200 should not be an error: %v", err)
	}
	if page.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", page.StatusCode)
	}
	if page.Doc != nil {
		t.Error("non-200 page should not be parsed")
	}
}

func TestFailurePhrase(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "server busy banner",
			body: `<html><body><p>The Server is Busy, please try again later.</p></body></html>`,
			want: "server is busy",
		},
		{
			name: "case not found",
			body: `<html><body><h2>The case Could Not Be Found.</h2></body></html>`,
			want: "could not be found",
		},
		{
			name: "phrase split across markup still matches visible text",
			body: `<html><body><p>An error <b>has occurred</b></p></body></html>`,
			want: "error has occurred",
		},
		{
			name: "clean docket",
			body: docketHTML,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			f := New(server.URL + "?caseNumber=")
			page, err := f.Fetch("CR2025-000001")
			if err != nil {
				t.Fatalf("Fetch() failed: %v", err)
			}
			if got := page.FailurePhrase(); got != tt.want {
				t.Errorf("FailurePhrase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchTLSRetry(t *testing.T) {
	// httptest's TLS server uses a self-signed certificate, so the default
	// verifying client fails the handshake exactly like the court site does
	// on its bad-chain days. The insecure retry should recover.
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, docketHTML)
	}))
	defer server.Close()

	f := New(server.URL + "?caseNumber=")
	page, err := f.Fetch("CR2025-123456")
	if err != nil {
		t.Fatalf("expected insecure retry to recover, got %v", err)
	}
	if page.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", page.StatusCode)
	}
	if page.Doc == nil {
		t.Error("expected parsed document after retry")
	}
	if f.insecure == nil {
		t.Error("retry should have built the insecure client")
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	f := New(server.URL + "?caseNumber=")
	if _, err := f.Fetch("CR2025-123456"); err == nil {
		t.Fatal("expected transport error")
	}
	if f.insecure != nil {
		t.Error("non-TLS transport errors must not trigger the insecure retry")
	}
}
