package main

import (
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/session"
	"github.com/journeyq/dashboard/internal/toast"
)

// options holds the command line flags
type options struct {
	email   string
	service domain.ServiceType
	logout  bool

	initConfig bool

	signup   bool
	name     string
	business string
	phone    string
	address  string
}

// signIn resolves the starting user. A failed signup is reported as a toast
// and the dashboard starts signed out.
func signIn(store *session.Store, queue *toast.Queue, opts options) (*domain.User, error) {
	if opts.signup {
		user, err := store.Signup(domain.User{
			Name:         opts.name,
			Email:        opts.email,
			Phone:        opts.phone,
			ServiceType:  opts.service,
			BusinessName: opts.business,
			Address:      opts.address,
		})
		if err != nil {
			queue.Enqueue(toast.Options{Title: "Signup Failed", Description: err.Error(), Variant: toast.VariantDestructive})
			return nil, nil
		}
		queue.Enqueue(toast.Options{Title: "Account Created!", Description: "Welcome to JourneyQ! Your account has been created successfully."})
		return &user, nil
	}

	user, err := store.Load()
	if err != nil {
		return nil, err
	}

	switch {
	case user == nil && opts.email != "":
		signedIn, err := store.Login(opts.email, opts.service)
		if err != nil {
			return nil, err
		}
		user = &signedIn
	case user == nil:
		return nil, nil
	}
	queue.Enqueue(toast.Options{Title: "Welcome back!", Description: "Signed in as " + user.Email})
	return user, nil
}
