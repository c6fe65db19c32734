package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Application ApplicationRepo
	Quote       QuoteRepo
	Contact     ContactRepo
	Testimonial TestimonialRepo
	User        UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Application: NewApplicationRepo(db),
		Quote:       NewQuoteRepo(db),
		Contact:     NewContactRepo(db),
		Testimonial: NewTestimonialRepo(db),
		User:        NewUserRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Application: r.Application.WithTx(tx),
		Quote:       r.Quote.WithTx(tx),
		Contact:     r.Contact.WithTx(tx),
		Testimonial: r.Testimonial.WithTx(tx),
		User:        r.User.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside a transaction. Without an attached database fn runs
// directly against the current repos.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
