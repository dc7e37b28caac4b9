package render_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellscribe/spells-api/internal/clients/render"
	"github.com/spellscribe/spells-api/internal/errors"
)

type RenderClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client render.Client
	ctx    context.Context

	// renderStatus lets tests force a failing render response.
	renderStatus int
	lastForm     map[string]string
	lastUser     string
	lastPass     string
}

func (s *RenderClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.renderStatus = http.StatusOK

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/image", func(w http.ResponseWriter, r *http.Request) {
		s.lastUser, s.lastPass, _ = r.BasicAuth()
		_ = r.ParseForm()
		s.lastForm = map[string]string{
			"html":         r.PostFormValue("html"),
			"css":          r.PostFormValue("css"),
			"device_scale": r.PostFormValue("device_scale"),
		}

		if s.renderStatus != http.StatusOK {
			w.WriteHeader(s.renderStatus)
			return
		}
		_, _ = w.Write([]byte(`{"url":"` + s.server.URL + `/images/abc123"}`))
	})
	mux.HandleFunc("/images/abc123", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	})
	s.server = httptest.NewServer(mux)

	client, err := render.New(&render.Config{
		URL:         s.server.URL + "/v1/image",
		UserID:      "user-1",
		APIKey:      "key-1",
		CSS:         "table { border: 1px solid; }",
		HTTPTimeout: 5 * time.Second,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *RenderClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RenderClientTestSuite) TestCreateImage() {
	url, err := s.client.CreateImage(s.ctx, "<table><tr><td>5к6</td></tr></table>")
	s.Require().NoError(err)
	s.Equal(s.server.URL+"/images/abc123", url)

	s.Equal("user-1", s.lastUser)
	s.Equal("key-1", s.lastPass)
	s.Equal("<table><tr><td>5к6</td></tr></table>", s.lastForm["html"])
	s.Equal("table { border: 1px solid; }", s.lastForm["css"])
	s.Equal("1", s.lastForm["device_scale"])
}

func (s *RenderClientTestSuite) TestCreateImageEmptyHTML() {
	_, err := s.client.CreateImage(s.ctx, "")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RenderClientTestSuite) TestCreateImageServiceError() {
	s.renderStatus = http.StatusTooManyRequests

	_, err := s.client.CreateImage(s.ctx, "<table></table>")
	s.Error(err)
	s.True(errors.IsRenderFailed(err))
}

func (s *RenderClientTestSuite) TestDownloadImage() {
	path := filepath.Join(s.T().TempDir(), "spell_0.png")

	err := s.client.DownloadImage(s.ctx, s.server.URL+"/images/abc123", path)
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("png-bytes", string(data))
}

func (s *RenderClientTestSuite) TestDownloadImageMissing() {
	path := filepath.Join(s.T().TempDir(), "spell_0.png")

	err := s.client.DownloadImage(s.ctx, s.server.URL+"/images/missing", path)
	s.Error(err)
	s.True(errors.IsRenderFailed(err))

	_, statErr := os.Stat(path)
	s.True(os.IsNotExist(statErr))
}

func (s *RenderClientTestSuite) TestNewMissingConfig() {
	_, err := render.New(&render.Config{URL: "http://example.com/v1/image"})
	s.Error(err)
}

func TestRenderClientTestSuite(t *testing.T) {
	suite.Run(t, new(RenderClientTestSuite))
}
