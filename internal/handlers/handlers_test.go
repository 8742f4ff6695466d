package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shikshamitra/internal/catalog"
	"shikshamitra/internal/models"
	"shikshamitra/internal/tickets"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCatalogCSV = `Institute,Branch,category,gen,mews,fews,mobc,fobc,msc,fsc,mst,fst
X,CS,SFS,3000,4000,4100,4200,4300,5000,5100,6000,6100
Y,EC,SFS,2000,2500,2600,,2900,3500,3600,4500,4600
Z,CS,GAS,1000,1200,1300,1400,1500,1600,1700,1800,1900
`

type stubTicketStore struct {
	nextID    uint
	tickets   map[uint]models.Ticket
	insertErr error
}

func newStubTicketStore() *stubTicketStore {
	return &stubTicketStore{nextID: 1, tickets: make(map[uint]models.Ticket)}
}

func (s *stubTicketStore) Insert(_ context.Context, in models.TicketInput) (models.Ticket, error) {
	if s.insertErr != nil {
		return models.Ticket{}, s.insertErr
	}
	t := models.Ticket{ID: s.nextID, Name: in.Name, Email: in.Email, Mobile: in.Mobile, Issue: in.Issue}
	s.tickets[t.ID] = t
	s.nextID++
	return t, nil
}

func (s *stubTicketStore) FindByID(_ context.Context, id uint) (models.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return models.Ticket{}, gorm.ErrRecordNotFound
	}
	return t, nil
}

type stubNotifier struct{ err error }

func (n *stubNotifier) Send(context.Context, string, string, string) error { return n.err }

func loadTestCatalog(t *testing.T) {
	t.Helper()
	c, err := catalog.Read(strings.NewReader(testCatalogCSV))
	require.NoError(t, err)
	Catalog = c
}

func TestPredict(t *testing.T) {
	loadTestCatalog(t)

	t.Run("returns eligible rows with unknown cutoffs as null", func(t *testing.T) {
		body := `{"gender":"male","group_label":"SFS","category":"OBC","rank":4100}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictor/predict", strings.NewReader(body))
		rec := httptest.NewRecorder()

		Predict(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Count   int                     `json:"count"`
			Results []models.EligibilityRow `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Count)
		// X: mobc 4200 >= 4100. Y: mobc empty -> included, null cutoff.
		assert.Equal(t, "X", resp.Results[0].Institute)
		require.NotNil(t, resp.Results[0].Cutoff)
		assert.Equal(t, 4200, *resp.Results[0].Cutoff)
		assert.Equal(t, "Y", resp.Results[1].Institute)
		assert.Nil(t, resp.Results[1].Cutoff)
	})

	t.Run("invalid query is a 400", func(t *testing.T) {
		body := `{"gender":"male","group_label":"SFS","category":"OBC","rank":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictor/predict", strings.NewReader(body))
		rec := httptest.NewRecorder()

		Predict(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPredictorGroups(t *testing.T) {
	loadTestCatalog(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictor/groups", nil)
	rec := httptest.NewRecorder()

	PredictorGroups(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Groups []string `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"GAS", "SFS"}, resp.Groups)
}

func TestSubmitTicket(t *testing.T) {
	t.Run("notify failure still reports the saved ticket", func(t *testing.T) {
		store := newStubTicketStore()
		Tickets = store
		Pipeline = tickets.NewPipeline(store, &stubNotifier{err: errors.New("smtp down")})

		body := `{"name":"Asha","email":"asha@example.com","issue":"wrong subject group"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(body))
		rec := httptest.NewRecorder()

		SubmitTicket(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["email_sent"])
		assert.NotEmpty(t, resp["warning"])
		assert.Len(t, store.tickets, 1)
	})

	t.Run("validation failure never writes", func(t *testing.T) {
		store := newStubTicketStore()
		Tickets = store
		Pipeline = tickets.NewPipeline(store, &stubNotifier{})

		body := `{"name":"","email":"asha@example.com","issue":"help"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(body))
		rec := httptest.NewRecorder()

		SubmitTicket(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, store.tickets)
	})

	t.Run("store failure is a hard error", func(t *testing.T) {
		store := newStubTicketStore()
		store.insertErr = errors.New("connection refused")
		Tickets = store
		Pipeline = tickets.NewPipeline(store, &stubNotifier{})

		body := `{"name":"Asha","email":"asha@example.com","issue":"help"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(body))
		rec := httptest.NewRecorder()

		SubmitTicket(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetTicket(t *testing.T) {
	store := newStubTicketStore()
	Tickets = store
	stored, err := store.Insert(context.Background(), models.TicketInput{Name: "Asha", Email: "a@b.c", Issue: "help"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/api/v1/tickets/{id}", GetTicket)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets/1", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Ticket
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, stored.ID, got.ID)
	})

	t.Run("missing is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets/99", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRegisterAdminToken(t *testing.T) {
	AdminRegisterToken = "sekrit"
	defer func() { AdminRegisterToken = "" }()

	body := `{"username":"newuser","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Register(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSearchFAQsRequiresQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/faqs/search", nil)
	rec := httptest.NewRecorder()

	SearchFAQs(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
