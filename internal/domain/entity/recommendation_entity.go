package entity

import (
	"encoding/json"
	"fmt"
)

type RecommendationType string

const (
	RecommendationCourse RecommendationType = "course"
	RecommendationCareer RecommendationType = "career"
	RecommendationJob    RecommendationType = "job"
)

// Recommendation is a typed record attached to a Profile. Data is the JSON payload
// stored as-is: {"name"} for courses and careers, a Job for jobs.
type Recommendation struct {
	ID        int64
	ProfileID int64
	Type      RecommendationType
	Data      json.RawMessage
}

// Named is the payload of course and career recommendations.
type Named struct {
	Name string `json:"name"`
}

// Job is the payload of job recommendations.
type Job struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

func NewCourse(name string) (Recommendation, error) {
	return newRecommendation(RecommendationCourse, Named{Name: name})
}

func NewCareer(name string) (Recommendation, error) {
	return newRecommendation(RecommendationCareer, Named{Name: name})
}

func NewJob(j Job) (Recommendation, error) {
	return newRecommendation(RecommendationJob, j)
}

func newRecommendation(typ RecommendationType, payload any) (Recommendation, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Recommendation{}, fmt.Errorf("encode %s recommendation: %w", typ, err)
	}
	return Recommendation{Type: typ, Data: b}, nil
}

// Name decodes the payload of a course or career recommendation.
func (r Recommendation) Name() (string, error) {
	var n Named
	if err := json.Unmarshal(r.Data, &n); err != nil {
		return "", fmt.Errorf("decode %s recommendation %d: %w", r.Type, r.ID, err)
	}
	return n.Name, nil
}

// Job decodes the payload of a job recommendation.
func (r Recommendation) Job() (Job, error) {
	var j Job
	if err := json.Unmarshal(r.Data, &j); err != nil {
		return Job{}, fmt.Errorf("decode job recommendation %d: %w", r.ID, err)
	}
	return j, nil
}
