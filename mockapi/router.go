package mockapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gateway"
	"github.com/leetcoach/client/httpjson"
)

type RouterOptions struct {
	LogLevel       slog.Level
	AllowedOrigins []string
}

func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		LogLevel:       slog.LevelInfo,
		AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
	}
}

type server struct {
	backend *Backend
}

// NewRouter exposes b over the LeetCoach HTTP contract.
func NewRouter(b *Backend, opts RouterOptions) http.Handler {
	router := chi.NewRouter()

	logger := httplog.NewLogger("leetcoach-mockapi", httplog.Options{
		LogLevel:         opts.LogLevel,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})
	router.Use(httplog.RequestLogger(logger))
	router.Use(metricsMiddleware)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3000,
	})
	router.Use(corsMiddleware.Handler)

	s := &server{backend: b}

	router.Get("/problems/random", s.randomProblem)
	router.Get("/problems/categories/", s.categories)
	router.Get("/problems/", s.listProblems)
	router.Get("/problems/{problemID}", s.getProblem)

	router.Post("/submit/", s.submit)
	router.Post("/submit/run", s.run)
	router.Post("/submit/feedback", s.reviewCode)
	router.Get("/submit/{submissionID}", s.getSubmission)

	router.Post("/chat/", s.chat)
	router.Get("/chat/{problemID}/history", s.chatHistory)

	router.Get("/solutions/{problemID}", s.solution)
	router.Post("/feedback/", s.feedback)

	router.Method(http.MethodGet, "/metrics", metricsHandler())

	return router
}

func filterFromQuery(r *http.Request) domain.ProblemFilter {
	q := r.URL.Query()
	f := domain.ProblemFilter{Category: q.Get("category")}
	if d := q.Get("difficulty"); d != "" {
		f.Difficulty = domain.ParseDifficulty(d)
	}
	return f
}

func intQuery(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func (s *server) randomProblem(w http.ResponseWriter, r *http.Request) {
	p, err := s.backend.RandomProblem(filterFromQuery(r))
	if err != nil {
		httpjson.HandleError(httplog.LogEntry(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.ProblemToJson(p))
}

func (s *server) categories(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, s.backend.Categories())
}

func (s *server) listProblems(w http.ResponseWriter, r *http.Request) {
	problems := s.backend.ListProblems(
		filterFromQuery(r),
		intQuery(r, "limit", gateway.DefaultListLimit),
		intQuery(r, "offset", 0))
	res := make([]gateway.ProblemJson, 0, len(problems))
	for _, p := range problems {
		res = append(res, gateway.ProblemToJson(p))
	}
	httpjson.WriteSuccessJson(w, res)
}

func (s *server) getProblem(w http.ResponseWriter, r *http.Request) {
	p, err := s.backend.GetProblem(chi.URLParam(r, "problemID"))
	if err != nil {
		httpjson.HandleError(httplog.LogEntry(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.ProblemToJson(p))
}

func decodeAttempt(r *http.Request) (domain.Attempt, error) {
	var body gateway.AttemptJson
	if err := httpjson.DecodeBody(r, &body); err != nil {
		return domain.Attempt{}, ErrInvalidBody().SetDebug(err)
	}
	return domain.Attempt{
		ProblemID: body.ProblemID,
		Language:  domain.Language(body.Language),
		Code:      body.Code,
	}, nil
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())
	a, err := decodeAttempt(r)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	sub, err := s.backend.Submit(a)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	judgedVerdicts.WithLabelValues("submit", sub.Verdict.String()).Inc()
	httpjson.WriteSuccessJson(w, gateway.SubmissionToJson(sub))
}

func (s *server) run(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())
	a, err := decodeAttempt(r)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	res, err := s.backend.Run(a)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	judgedVerdicts.WithLabelValues("run", res.Verdict.String()).Inc()
	httpjson.WriteSuccessJson(w, gateway.RunResultToJson(res))
}

func (s *server) reviewCode(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())
	a, err := decodeAttempt(r)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	review, err := s.backend.ReviewCode(a)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.CodeReviewToJson(review))
}

func (s *server) getSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := s.backend.GetSubmission(chi.URLParam(r, "submissionID"))
	if err != nil {
		httpjson.HandleError(httplog.LogEntry(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.SubmissionToJson(sub))
}

func (s *server) chat(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())
	var body gateway.ChatRequestJson
	if err := httpjson.DecodeBody(r, &body); err != nil {
		httpjson.HandleError(log, w, ErrInvalidBody().SetDebug(err))
		return
	}
	snippet := ""
	if body.CodeSnippet != nil {
		snippet = *body.CodeSnippet
	}
	msg, err := s.backend.Chat(body.ProblemID, body.UserMessage, snippet)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.ChatMessageToJson(msg))
}

func (s *server) chatHistory(w http.ResponseWriter, r *http.Request) {
	msgs := s.backend.ChatHistory(
		chi.URLParam(r, "problemID"),
		intQuery(r, "limit", gateway.DefaultHistoryLimit))
	res := make([]gateway.ChatMessageJson, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, gateway.ChatMessageToJson(m))
	}
	httpjson.WriteSuccessJson(w, res)
}

func (s *server) solution(w http.ResponseWriter, r *http.Request) {
	sol, err := s.backend.Solution(chi.URLParam(r, "problemID"))
	if err != nil {
		httpjson.HandleError(httplog.LogEntry(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.SolutionToJson(sol))
}

func (s *server) feedback(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())
	var body gateway.FeedbackRequestJson
	if err := httpjson.DecodeBody(r, &body); err != nil {
		httpjson.HandleError(log, w, ErrInvalidBody().SetDebug(err))
		return
	}
	fb, err := s.backend.Feedback(body.SubmissionID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, gateway.FeedbackToJson(fb))
}
