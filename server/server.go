// Package server exposes an advisor session as a JSON API.
//
// One in-memory session backs the whole server: state lives exactly as long
// as the process. Expected gateway failures map to status codes and inline
// notices, never to panics, and a failed request leaves the session state
// intact.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/etnz/advisor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wires one advisor session to HTTP handlers.
type Server struct {
	// Currency is the currency incoming plain amounts are denominated in.
	// Defaults to USD.
	Currency string

	session *advisor.Session
	// The session is single-actor by design; the HTTP boundary serializes
	// access to it.
	mu sync.Mutex
}

// New creates a server over the given session.
func New(session *advisor.Session) *Server {
	return &Server{Currency: "USD", session: session}
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/session", s.handleSession)
		api.Post("/expenses", s.handleAddExpense)
		api.Get("/expenses", s.handleListExpenses)
		api.Get("/expenses/summary", s.handleExpenseSummary)
		api.Put("/plan", s.handleSetPlan)
		api.Get("/plan/projection", s.handleProjection)
		api.Post("/suggestions", s.handleSuggest)
		api.Post("/advice", s.handleAdvice)
	})

	return r
}

func (s *Server) money(amount float64) advisor.Money {
	return advisor.M(amount, s.Currency)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, planSet := s.session.Plan()
	respondJSON(w, http.StatusOK, map[string]any{
		"id":       s.session.ID.String(),
		"expenses": len(s.session.Expenses()),
		"plan_set": planSet,
	})
}

// expenseRequest is the POST /api/expenses body.
type expenseRequest struct {
	Date     advisor.Date `json:"date"`
	Category string       `json:"category"`
	Amount   float64      `json:"amount"`
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.AddExpense(req.Date, req.Category, s.money(req.Amount)); err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"date":     req.Date,
		"category": req.Category,
		"amount":   req.Amount,
	})
}

// expenseView is one row of GET /api/expenses.
type expenseView struct {
	Date     advisor.Date `json:"date"`
	Category string       `json:"category"`
	Amount   float64      `json:"amount"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.session.Expenses()
	views := make([]expenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, expenseView{Date: e.Day, Category: e.Category, Amount: e.Amount.AsFloat()})
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := make(map[string]float64)
	for category, total := range s.session.ExpenseSummary() {
		summary[category] = total.AsFloat()
	}
	respondJSON(w, http.StatusOK, summary)
}

// planRequest is the PUT /api/plan body.
type planRequest struct {
	CurrentAge          int     `json:"current_age"`
	RetirementAge       int     `json:"retirement_age"`
	CurrentSavings      float64 `json:"current_savings"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	SavingsGoal         float64 `json:"savings_goal"`
}

func (s *Server) handleSetPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.session.SetPlan(advisor.Plan{
		CurrentAge:          req.CurrentAge,
		RetirementAge:       req.RetirementAge,
		CurrentSavings:      s.money(req.CurrentSavings),
		MonthlyContribution: s.money(req.MonthlyContribution),
		SavingsGoal:         s.money(req.SavingsGoal),
	})
	if err != nil {
		respondFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projection, err := s.session.Projection(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}

	resp := map[string]any{
		"inflation_rate":      float64(projection.Rate),
		"rate_defaulted":      projection.RateDefaulted,
		"years_to_retirement": projection.Years,
		"adjusted_goal":       projection.AdjustedGoal.AsFloat(),
	}
	if projection.RateDefaulted {
		resp["notice"] = "inflation rate unavailable, projected without adjustment"
	}
	respondJSON(w, http.StatusOK, resp)
}

// suggestRequest is the POST /api/suggestions body.
type suggestRequest struct {
	Amount float64 `json:"amount"`
}

// suggestionView is one row of the suggestion response.
type suggestionView struct {
	Ticker              string  `json:"ticker"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	MarketCap           int64   `json:"market_cap"`
	Week52High          float64 `json:"week52_high"`
	Week52Low           float64 `json:"week52_low"`
	SuggestedInvestment float64 `json:"suggested_investment"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	suggestions, err := s.session.Suggest(r.Context(), s.money(req.Amount))
	if err != nil {
		respondFailure(w, err)
		return
	}

	views := make([]suggestionView, 0, len(suggestions))
	for _, sg := range suggestions {
		views = append(views, suggestionView{
			Ticker:              sg.Ticker,
			Name:                sg.Name,
			Price:               sg.Price.AsFloat(),
			MarketCap:           sg.MarketCap,
			Week52High:          sg.High52.AsFloat(),
			Week52Low:           sg.Low52.AsFloat(),
			SuggestedInvestment: sg.Amount.AsFloat(),
		})
	}
	respondJSON(w, http.StatusOK, views)
}

// adviceRequest is the POST /api/advice body.
type adviceRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	advice, err := s.session.Ask(r.Context(), req.Question)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}
