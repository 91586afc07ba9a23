package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client with correct base URL", func(t *testing.T) {
		client := NewClient("http://localhost:8080/", "test-token")
		if client.BaseURL != "http://localhost:8080/api" {
			t.Errorf("expected BaseURL 'http://localhost:8080/api', got %s", client.BaseURL)
		}
		if client.Token != "test-token" {
			t.Errorf("expected Token 'test-token', got %s", client.Token)
		}
	})

	t.Run("removes trailing slash from base URL", func(t *testing.T) {
		client := NewClient("http://example.com///", "")
		if client.BaseURL != "http://example.com/api" {
			t.Errorf("expected BaseURL 'http://example.com/api', got %s", client.BaseURL)
		}
	})

	t.Run("sets default HTTP client timeout", func(t *testing.T) {
		client := NewClient("http://localhost:8080", "")
		if client.HTTPClient == nil {
			t.Fatal("expected HTTPClient to be set")
		}
		if client.HTTPClient.Timeout == 0 {
			t.Error("expected HTTPClient to have a timeout set")
		}
	})
}

func TestAPIError(t *testing.T) {
	t.Run("formats error message correctly", func(t *testing.T) {
		err := &APIError{Status: 404, Message: "not found"}
		expected := "api: 404 — not found"
		if err.Error() != expected {
			t.Errorf("expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("makes GET request with correct headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET request, got %s", r.Method)
			}
			if r.Header.Get("Authorization") != "Bearer test-token" {
				t.Errorf("expected Authorization header 'Bearer test-token', got %s", r.Header.Get("Authorization"))
			}
			if r.Header.Get("Accept") != "application/json" {
				t.Errorf("expected Accept header 'application/json', got %s", r.Header.Get("Accept"))
			}
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		var result map[string]string
		if err := client.Get(context.Background(), "/test", nil, &result); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	})

	t.Run("omits Authorization header without token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "" {
				t.Errorf("expected no Authorization header, got %s", r.Header.Get("Authorization"))
			}
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		var result map[string]string
		if err := client.Get(context.Background(), "/files/share/tok123", nil, &result); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	})

	t.Run("appends query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") != "1" {
				t.Errorf("expected page=1, got %s", r.URL.Query().Get("page"))
			}
			if r.URL.Query().Get("limit") != "20" {
				t.Errorf("expected limit=20, got %s", r.URL.Query().Get("limit"))
			}
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		params := map[string][]string{"page": {"1"}, "limit": {"20"}}
		var result map[string]string
		if err := client.Get(context.Background(), "/test", params, &result); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	})

	t.Run("returns APIError on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		var result map[string]string
		err := client.Get(context.Background(), "/test", nil, &result)
		if err == nil {
			t.Fatal("expected error for 404 status")
		}

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", apiErr.Status)
		}
		if apiErr.Message != "not found" {
			t.Errorf("expected message 'not found', got %q", apiErr.Message)
		}
	})

	t.Run("extracts message-style error bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "name required"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		err := client.Get(context.Background(), "/test", nil, nil)
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Message != "name required" {
			t.Errorf("expected message 'name required', got %q", apiErr.Message)
		}
	})

	t.Run("returns error for unparsable success body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		var result map[string]string
		if err := client.Get(context.Background(), "/test", nil, &result); err == nil {
			t.Fatal("expected decode error for non-JSON body")
		}
	})
}

func TestClient_Put(t *testing.T) {
	t.Run("sends JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", r.Method)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			if body["newName"] != "b.txt" {
				t.Errorf("expected newName 'b.txt', got %q", body["newName"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		if err := client.RenameFile(context.Background(), "f1", "b.txt"); err != nil {
			t.Fatalf("RenameFile() returned error: %v", err)
		}
	})
}

func TestClient_Upload(t *testing.T) {
	t.Run("sends multipart body with folder id and file field", func(t *testing.T) {
		content := []byte("hello upload")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("parsing multipart form: %v", err)
			}
			if got := r.FormValue("folder_id"); got != "d1" {
				t.Errorf("expected folder_id 'd1', got %q", got)
			}
			f, hdr, err := r.FormFile("file")
			if err != nil {
				t.Fatalf("missing file part: %v", err)
			}
			defer f.Close()
			if hdr.Filename != "a.txt" {
				t.Errorf("expected filename 'a.txt', got %q", hdr.Filename)
			}
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(f); err != nil {
				t.Fatalf("reading file part: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), content) {
				t.Errorf("file content mismatch: got %q", buf.String())
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"file": map[string]interface{}{"id": "f1", "name": "a.txt", "size": len(content)},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		entry, err := client.UploadFile(context.Background(), bytes.NewReader(content), "a.txt", int64(len(content)), "d1", nil)
		if err != nil {
			t.Fatalf("UploadFile() returned error: %v", err)
		}
		if entry.ID != "f1" || entry.Name != "a.txt" {
			t.Errorf("unexpected entry: %+v", entry)
		}
	})

	t.Run("reports monotonic progress up to total", func(t *testing.T) {
		content := bytes.Repeat([]byte("x"), 64*1024)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseMultipartForm(1 << 20)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "f1"})
		}))
		defer server.Close()

		var loads []int64
		client := NewClient(server.URL, "t")
		_, err := client.UploadFile(context.Background(), bytes.NewReader(content), "big.bin", int64(len(content)), "", func(loaded, total int64) {
			if total != int64(len(content)) {
				t.Errorf("expected total %d, got %d", len(content), total)
			}
			loads = append(loads, loaded)
		})
		if err != nil {
			t.Fatalf("UploadFile() returned error: %v", err)
		}
		if len(loads) == 0 {
			t.Fatal("expected progress callbacks")
		}
		prev := int64(0)
		for _, l := range loads {
			if l < prev {
				t.Fatalf("progress regressed: %d after %d", l, prev)
			}
			if l > int64(len(content)) {
				t.Fatalf("progress %d exceeds total %d", l, len(content))
			}
			prev = l
		}
		if prev != int64(len(content)) {
			t.Errorf("final progress %d, want %d", prev, len(content))
		}
	})

	t.Run("marks upload failed on server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInsufficientStorage)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		_, err := client.UploadFile(context.Background(), strings.NewReader("data"), "a.txt", 4, "", nil)
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Message != "quota exceeded" {
			t.Errorf("expected 'quota exceeded', got %q", apiErr.Message)
		}
	})
}

func TestClient_ShareAndDownload(t *testing.T) {
	t.Run("create share link accepts legacy key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["permission"] != "edit" {
				t.Errorf("expected permission 'edit', got %q", body["permission"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"sharelink": "http://x/share/abc"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		link, err := client.CreateShareLink(context.Background(), "f1", "edit")
		if err != nil {
			t.Fatalf("CreateShareLink() returned error: %v", err)
		}
		if link != "http://x/share/abc" {
			t.Errorf("unexpected link %q", link)
		}
	})

	t.Run("download url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/files/f1/download" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"downloadUrl": "http://signed/xyz"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		u, err := client.DownloadURL(context.Background(), "f1")
		if err != nil {
			t.Fatalf("DownloadURL() returned error: %v", err)
		}
		if u != "http://signed/xyz" {
			t.Errorf("unexpected url %q", u)
		}
	})

	t.Run("list shared files", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/files/shared" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"files": []map[string]interface{}{
					{"id": "f1", "name": "a.txt", "sharePermission": "view"},
					{"id": "f2", "name": "b.txt", "sharePermission": "edit"},
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "t")
		files, err := client.ListShared(context.Background())
		if err != nil {
			t.Fatalf("ListShared() returned error: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}
		if files[0].Name != "a.txt" || files[1].SharePermission != "edit" {
			t.Errorf("unexpected files: %+v", files)
		}
	})

	t.Run("resolve share token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/files/share/tok" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"file":        map[string]interface{}{"id": "f1", "name": "a.txt"},
				"downloadUrl": "http://signed/abc",
				"permission":  "view",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		shared, err := client.ResolveShareToken(context.Background(), "tok")
		if err != nil {
			t.Fatalf("ResolveShareToken() returned error: %v", err)
		}
		if shared.File.Name != "a.txt" || shared.Permission != "view" {
			t.Errorf("unexpected shared file: %+v", shared)
		}
	})
}
