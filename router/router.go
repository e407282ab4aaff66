package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	noteHandler "github.com/isharehowlabs/yahudim.app/internal/note"
	noteService "github.com/isharehowlabs/yahudim.app/internal/note/service"
	questionHandler "github.com/isharehowlabs/yahudim.app/internal/question"
	questionService "github.com/isharehowlabs/yahudim.app/internal/question/service"
	"github.com/isharehowlabs/yahudim.app/middleware"
	"github.com/isharehowlabs/yahudim.app/pkg/httputil"
	"github.com/isharehowlabs/yahudim.app/store"
)

const healthMessage = "Children's Church API is running"

type Options struct {
	CORSOrigins    []string
	MetricsEnabled bool
}

func Setup(db *store.Manager, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	if opts.MetricsEnabled {
		metrics := middleware.NewMetrics()
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler())
	}

	r.Get("/health", healthCheck)

	questions := questionHandler.NewQuestionHandler(questionService.NewQuestionService(db))
	notes := noteHandler.NewNoteHandler(noteService.NewNoteService(db))

	r.Route("/api", func(r chi.Router) {
		r.Route("/qanda/questions", func(r chi.Router) {
			r.Get("/", questions.GetQuestions)
			r.Post("/", questions.CreateQuestion)
			r.Put("/{id}", questions.UpdateQuestion)
			r.Delete("/{id}", questions.DeleteQuestion)
		})
		r.Route("/notes", func(r chi.Router) {
			r.Get("/", notes.GetNotes)
			r.Post("/", notes.CreateNote)
			r.Get("/{id}", notes.GetNote)
			r.Put("/{id}", notes.UpdateNote)
			r.Delete("/{id}", notes.DeleteNote)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": healthMessage,
	})
}
