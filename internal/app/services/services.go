package services

import (
	"petminder/internal/app/deps"
	drl "petminder/internal/core/domain/rate_limiter"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	completereminder "petminder/internal/core/services/complete_reminder"
	createpet "petminder/internal/core/services/create_pet"
	createreminder "petminder/internal/core/services/create_reminder"
	createtask "petminder/internal/core/services/create_task"
	deletepet "petminder/internal/core/services/delete_pet"
	deletereminder "petminder/internal/core/services/delete_reminder"
	deletetask "petminder/internal/core/services/delete_task"
	deleteuser "petminder/internal/core/services/delete_user"
	getpet "petminder/internal/core/services/get_pet"
	getreminder "petminder/internal/core/services/get_reminder"
	gettask "petminder/internal/core/services/get_task"
	getuser "petminder/internal/core/services/get_user"
	listpets "petminder/internal/core/services/list_pets"
	listreminders "petminder/internal/core/services/list_reminders"
	listtasks "petminder/internal/core/services/list_tasks"
	listusers "petminder/internal/core/services/list_users"
	login "petminder/internal/core/services/log_in"
	logout "petminder/internal/core/services/log_out"
	publishduereminders "petminder/internal/core/services/publish_due_reminders"
	ratelimiting "petminder/internal/core/services/rate_limiting"
	signup "petminder/internal/core/services/sign_up"
	updatepet "petminder/internal/core/services/update_pet"
	updatereminder "petminder/internal/core/services/update_reminder"
	updatetask "petminder/internal/core/services/update_task"
	updateuser "petminder/internal/core/services/update_user"
)

type Services struct {
	SignUp services.Service[signup.Input, signup.Result]
	LogIn  services.Service[login.Input, login.Result]
	LogOut services.Service[logout.Input, logout.Result]

	GetUser    services.Service[getuser.Input, getuser.Result]
	ListUsers  services.Service[listusers.Input, listusers.Result]
	UpdateUser services.Service[updateuser.Input, updateuser.Result]
	DeleteUser services.Service[deleteuser.Input, deleteuser.Result]

	CreatePet services.Service[createpet.Input, createpet.Result]
	GetPet    services.Service[getpet.Input, getpet.Result]
	ListPets  services.Service[listpets.Input, listpets.Result]
	UpdatePet services.Service[updatepet.Input, updatepet.Result]
	DeletePet services.Service[deletepet.Input, deletepet.Result]

	CreateTask services.Service[createtask.Input, createtask.Result]
	GetTask    services.Service[gettask.Input, gettask.Result]
	ListTasks  services.Service[listtasks.Input, listtasks.Result]
	UpdateTask services.Service[updatetask.Input, updatetask.Result]
	DeleteTask services.Service[deletetask.Input, deletetask.Result]

	CreateReminder   services.Service[createreminder.Input, createreminder.Result]
	GetReminder      services.Service[getreminder.Input, getreminder.Result]
	ListReminders    services.Service[listreminders.Input, listreminders.Result]
	UpdateReminder   services.Service[updatereminder.Input, updatereminder.Result]
	CompleteReminder services.Service[completereminder.Input, completereminder.Result]
	DeleteReminder   services.Service[deletereminder.Input, deletereminder.Result]
}

func withAuthentication[T auth.Input, S any](deps *deps.Deps, inner services.Service[T, S]) services.Service[T, S] {
	return auth.WithAuthentication(deps.Logger, deps.TokenValidator, deps.TokenRevoker, deps.Now, inner)
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}
	horizon := deps.Config.ReminderHorizonCount

	s.SignUp = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		signup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.IdentityGenerator,
			deps.Now,
		),
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 10},
		login.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.TokenIssuer,
			deps.Now,
		),
	)
	s.LogOut = withAuthentication(deps, logout.New(deps.Logger, deps.TokenRevoker, deps.Now))

	s.GetUser = withAuthentication(deps, getuser.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.ListUsers = withAuthentication(deps, listusers.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.UpdateUser = withAuthentication(
		deps,
		updateuser.New(deps.Logger, deps.UnitOfWork, deps.Guard, deps.PasswordHasher),
	)
	s.DeleteUser = withAuthentication(deps, deleteuser.New(deps.Logger, deps.UnitOfWork, deps.Guard))

	s.CreatePet = withAuthentication(
		deps,
		createpet.New(deps.Logger, deps.UnitOfWork, deps.Guard, deps.IdentityGenerator, deps.Now),
	)
	s.GetPet = withAuthentication(deps, getpet.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.ListPets = withAuthentication(deps, listpets.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.UpdatePet = withAuthentication(deps, updatepet.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.DeletePet = withAuthentication(deps, deletepet.New(deps.Logger, deps.UnitOfWork, deps.Guard))

	s.CreateTask = withAuthentication(
		deps,
		createtask.New(deps.Logger, deps.UnitOfWork, deps.Guard, deps.IdentityGenerator, deps.Now),
	)
	s.GetTask = withAuthentication(deps, gettask.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.ListTasks = withAuthentication(deps, listtasks.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.UpdateTask = withAuthentication(deps, updatetask.New(deps.Logger, deps.UnitOfWork, deps.Guard))
	s.DeleteTask = withAuthentication(deps, deletetask.New(deps.Logger, deps.UnitOfWork, deps.Guard))

	s.CreateReminder = withAuthentication(
		deps,
		createreminder.New(deps.Logger, deps.UnitOfWork, deps.Guard, deps.IdentityGenerator, horizon, deps.Now),
	)
	s.GetReminder = withAuthentication(
		deps,
		getreminder.New(deps.Logger, deps.UnitOfWork, deps.Guard, horizon, deps.Now),
	)
	s.ListReminders = withAuthentication(
		deps,
		listreminders.New(deps.Logger, deps.UnitOfWork, deps.Guard, horizon, deps.Now),
	)
	s.UpdateReminder = withAuthentication(
		deps,
		updatereminder.New(deps.Logger, deps.UnitOfWork, deps.Guard, horizon, deps.Now),
	)
	s.CompleteReminder = withAuthentication(
		deps,
		completereminder.New(deps.Logger, deps.UnitOfWork, deps.Guard, horizon, deps.Now),
	)
	s.DeleteReminder = withAuthentication(deps, deletereminder.New(deps.Logger, deps.UnitOfWork, deps.Guard))

	return s
}

// InitPublishDueReminders builds the scanner run by the scheduler.
func InitPublishDueReminders(
	deps *deps.Deps,
) services.Service[publishduereminders.Input, publishduereminders.Result] {
	return publishduereminders.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.DuePublisher,
		deps.Now,
		deps.Config.DueRemindersBatchSize,
	)
}
