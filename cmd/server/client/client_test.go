package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

type RESTClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *restClient
}

func (s *RESTClientTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/encounters/draft", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Owner-ID") != "owner-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHENTICATED","message":"owner header is required"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"draft":{"id":"enc-1","name":"Goblin ambush"},"created":true}`))
	})
	mux.HandleFunc("/api/v1/campaigns/missing/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"campaign not found","meta":{"campaign_id":"missing"}}}`))
	})
	mux.HandleFunc("/api/v1/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})
	s.server = httptest.NewServer(mux)

	s.client = &restClient{
		baseURL: s.server.URL + "/api/v1",
		owner:   "owner-1",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *RESTClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RESTClientTestSuite) TestDecodesResponse() {
	var out struct {
		Draft struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"draft"`
		Created bool `json:"created"`
	}

	err := s.client.do(context.Background(), http.MethodGet, "/encounters/draft", nil, &out)
	s.Require().NoError(err)
	s.Equal("enc-1", out.Draft.ID)
	s.Equal("Goblin ambush", out.Draft.Name)
	s.True(out.Created)
}

func (s *RESTClientTestSuite) TestErrorEnvelope() {
	s.Run("keeps code and meta", func() {
		err := s.client.do(context.Background(), http.MethodGet, "/campaigns/missing/stats", nil, nil)
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Equal("campaign not found", errors.GetMessage(err))
		s.Equal("missing", errors.GetMeta(err)["campaign_id"])
	})

	s.Run("wrong owner", func() {
		s.client.owner = "someone-else"
		err := s.client.do(context.Background(), http.MethodGet, "/encounters/draft", nil, nil)
		s.Require().Error(err)
		s.Equal(errors.CodeUnauthenticated, errors.GetCode(err))
	})

	s.Run("non envelope body", func() {
		err := s.client.do(context.Background(), http.MethodGet, "/broken", nil, nil)
		s.Require().Error(err)
		s.Equal(errors.CodeInternal, errors.GetCode(err))
		s.Contains(err.Error(), "502")
	})
}

func TestRESTClientTestSuite(t *testing.T) {
	suite.Run(t, new(RESTClientTestSuite))
}
