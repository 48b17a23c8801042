package health

import "time"

// Service reports process liveness for load balancer checks.
type Service struct {
	env     string
	started time.Time
}

func NewService(env string) *Service {
	return &Service{env: env, started: time.Now()}
}

type Status struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	Uptime string `json:"uptime"`
}

func (s *Service) Status() Status {
	return Status{
		Status: "ok",
		Env:    s.env,
		Uptime: time.Since(s.started).Round(time.Second).String(),
	}
}
