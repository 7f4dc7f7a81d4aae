package application

import (
	"context"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

// Keywords is the tag string stored on every profile.
const Keywords = "python,ml,aws"

// Courses and Careers are suggested to every submission, in this order.
var (
	Courses = []string{"Python for Data Science", "Machine Learning A-Z", "AWS Cloud Practitioner"}
	Careers = []string{"Data Scientist", "ML Engineer", "Cloud Architect"}
)

var staticJobs = []entity.Job{
	{Title: "Python Developer", Company: "TCS", Location: "Pune", Link: "https://naukri.com/python-developer-jobs"},
	{Title: "ML Engineer", Company: "Google", Location: "Bangalore", Link: "https://linkedin.com/jobs/ml-engineer-jobs"},
	{Title: "Data Scientist", Company: "Microsoft", Location: "Hyderabad", Link: "https://linkedin.com/jobs/data-scientist-jobs"},
	{Title: "Full Stack Developer", Company: "Amazon", Location: "Chennai", Link: "https://naukri.com/full-stack-developer-jobs"},
	{Title: "Cloud Engineer", Company: "Infosys", Location: "Delhi", Link: "https://linkedin.com/jobs/cloud-engineer-jobs"},
}

// StaticJobSource always returns the same five postings.
type StaticJobSource struct{}

func (StaticJobSource) Jobs(context.Context) ([]entity.Job, error) {
	out := make([]entity.Job, len(staticJobs))
	copy(out, staticJobs)
	return out, nil
}
