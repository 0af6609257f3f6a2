package handlers

import (
	"database/sql"

	"ats/internal/auth"
	"ats/internal/http/middleware"
	"ats/internal/query"
	"ats/internal/repositories"
	"ats/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler serves every route. Services are built per request so they log
// with the request id.
type Handler struct {
	DB     *sql.DB
	Tokens *auth.Manager

	users      repositories.UserRepository
	clients    repositories.ClientRepository
	offers     repositories.OfferRepository
	candidates repositories.CandidateRepository
	interviews repositories.InterviewRepository
	processes  repositories.ProcessRepository
}

func New(db *sql.DB, dialect query.Dialect, tokens *auth.Manager) *Handler {
	return &Handler{
		DB:         db,
		Tokens:     tokens,
		users:      repositories.NewUserRepository(db, dialect),
		clients:    repositories.NewClientRepository(db, dialect),
		offers:     repositories.NewOfferRepository(db, dialect),
		candidates: repositories.NewCandidateRepository(db, dialect),
		interviews: repositories.NewInterviewRepository(db, dialect),
		processes:  repositories.NewProcessRepository(db, dialect),
	}
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{Users: h.users, Tokens: h.Tokens, RequestID: middleware.GetRequestID(c)}
}

// Sessions is the authenticator used by middleware.RequireSession.
func (h *Handler) Sessions() middleware.SessionAuthenticator {
	return services.AuthService{Users: h.users, Tokens: h.Tokens}
}

func (h *Handler) userService(c *gin.Context) services.UserService {
	return services.UserService{Users: h.users, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) clientService(c *gin.Context) services.ClientService {
	return services.ClientService{Clients: h.clients, Users: h.users, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) offerService(c *gin.Context) services.OfferService {
	return services.OfferService{
		Offers:    h.offers,
		Clients:   h.clients,
		Users:     h.users,
		Processes: h.processes,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) candidateService(c *gin.Context) services.CandidateService {
	return services.CandidateService{
		Candidates: h.candidates,
		Users:      h.users,
		Processes:  h.processes,
		Interviews: h.interviews,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) interviewService(c *gin.Context) services.InterviewService {
	return services.InterviewService{
		Interviews: h.interviews,
		Candidates: h.candidates,
		Users:      h.users,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) processService(c *gin.Context) services.ProcessService {
	return services.ProcessService{Processes: h.processes, Candidates: h.candidates, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) analyticsService(c *gin.Context) services.AnalyticsService {
	return services.AnalyticsService{Clients: h.clients, Candidates: h.candidates, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{Offers: h.offerService(c), RequestID: middleware.GetRequestID(c)}
}
