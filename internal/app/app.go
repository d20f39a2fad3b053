package app

import (
	"fmt"
	"net/http"
	"petminder/internal/app/deps"
	"petminder/internal/app/services"
	"petminder/internal/http/handlers/auth"
	login "petminder/internal/http/handlers/auth/log_in"
	logout "petminder/internal/http/handlers/auth/log_out"
	signup "petminder/internal/http/handlers/auth/sign_up"
	createpet "petminder/internal/http/handlers/pets/create_pet"
	deletepet "petminder/internal/http/handlers/pets/delete_pet"
	getpet "petminder/internal/http/handlers/pets/get_pet"
	listpets "petminder/internal/http/handlers/pets/list_pets"
	updatepet "petminder/internal/http/handlers/pets/update_pet"
	completereminder "petminder/internal/http/handlers/reminders/complete_reminder"
	createreminder "petminder/internal/http/handlers/reminders/create_reminder"
	deletereminder "petminder/internal/http/handlers/reminders/delete_reminder"
	getreminder "petminder/internal/http/handlers/reminders/get_reminder"
	listreminders "petminder/internal/http/handlers/reminders/list_reminders"
	updatereminder "petminder/internal/http/handlers/reminders/update_reminder"
	createtask "petminder/internal/http/handlers/tasks/create_task"
	deletetask "petminder/internal/http/handlers/tasks/delete_task"
	gettask "petminder/internal/http/handlers/tasks/get_task"
	listtasks "petminder/internal/http/handlers/tasks/list_tasks"
	updatetask "petminder/internal/http/handlers/tasks/update_task"
	deleteuser "petminder/internal/http/handlers/users/delete_user"
	getuser "petminder/internal/http/handlers/users/get_user"
	listusers "petminder/internal/http/handlers/users/list_users"
	updateuser "petminder/internal/http/handlers/users/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps, s)
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))

	userRouter := chi.NewRouter()
	userRouter.Method(http.MethodGet, "/", listusers.New(s.ListUsers))
	userRouter.Method(http.MethodGet, "/me", getuser.New(s.GetUser))
	userRouter.Method(http.MethodGet, "/{userID}", getuser.New(s.GetUser))
	userRouter.Method(http.MethodPatch, "/{userID}", updateuser.New(s.UpdateUser))
	userRouter.Method(http.MethodDelete, "/{userID}", deleteuser.New(s.DeleteUser))

	petRouter := chi.NewRouter()
	petRouter.Method(http.MethodPost, "/", createpet.New(s.CreatePet))
	petRouter.Method(http.MethodGet, "/", listpets.New(s.ListPets))
	petRouter.Method(http.MethodGet, "/{petID}", getpet.New(s.GetPet))
	petRouter.Method(http.MethodPatch, "/{petID}", updatepet.New(s.UpdatePet))
	petRouter.Method(http.MethodDelete, "/{petID}", deletepet.New(s.DeletePet))

	taskRouter := chi.NewRouter()
	taskRouter.Method(http.MethodPost, "/", createtask.New(s.CreateTask))
	taskRouter.Method(http.MethodGet, "/", listtasks.New(s.ListTasks))
	taskRouter.Method(http.MethodGet, "/{taskID}", gettask.New(s.GetTask))
	taskRouter.Method(http.MethodPatch, "/{taskID}", updatetask.New(s.UpdateTask))
	taskRouter.Method(http.MethodDelete, "/{taskID}", deletetask.New(s.DeleteTask))

	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodGet, "/{reminderID}", getreminder.New(s.GetReminder))
	reminderRouter.Method(http.MethodPatch, "/{reminderID}", updatereminder.New(s.UpdateReminder))
	reminderRouter.Method(http.MethodDelete, "/{reminderID}", deletereminder.New(s.DeleteReminder))
	reminderRouter.Method(http.MethodPut, "/{reminderID}/completion", completereminder.New(s.CompleteReminder))

	router := chi.NewRouter()
	router.Use(deps.HTTPMetrics.Middleware(routePattern))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(auth.SetAuthTokenToContext)
	router.Mount("/auth", authRouter)
	router.Mount("/users", userRouter)
	router.Mount("/pets", petRouter)
	router.Mount("/tasks", taskRouter)
	router.Mount("/reminders", reminderRouter)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return router
}

// routePattern keeps metric labels bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return "unmatched"
	}
	return pattern
}
