// Copyright 2023 Dash Manager Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robfig/cron/v3"
	"istio.io/pkg/log"
)

var scope = log.RegisterScope("health", "The view health checker.", 0)

// Target is one URL the checker probes.
type Target struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Status is the result of the most recent probe of one target.
type Status struct {
	Target  Target    `json:"target"`
	Healthy bool      `json:"healthy"`
	Detail  string    `json:"detail,omitempty"`
	Checked time.Time `json:"checked"`
}

// Checker periodically probes the mounted view prefixes and the declared
// external links, keeping the latest status per target.
type Checker struct {
	targets []Target
	client  *http.Client
	cron    *cron.Cron

	mu       sync.Mutex
	statuses map[string]Status
	subs     map[chan Status]struct{}
}

// Options configures a Checker.
type Options struct {
	// Schedule is a cron spec, e.g. "@every 1m".
	Schedule string

	// Timeout bounds a single probe.
	Timeout time.Duration
}

func NewChecker(targets []Target, opt Options) (*Checker, error) {
	timeout := opt.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	schedule := opt.Schedule
	if schedule == "" {
		schedule = "@every 1m"
	}

	c := &Checker{
		targets:  targets,
		client:   &http.Client{Timeout: timeout},
		cron:     cron.New(),
		statuses: make(map[string]Status),
		subs:     make(map[chan Status]struct{}),
	}

	if _, err := c.cron.AddFunc(schedule, func() {
		if err := c.CheckAll(context.Background()); err != nil {
			scope.Warnf("Health check failures: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid health check schedule %q: %v", schedule, err)
	}

	return c, nil
}

// Start begins the periodic probing.
func (c *Checker) Start() {
	c.cron.Start()
}

// Stop halts the periodic probing.
func (c *Checker) Stop() {
	c.cron.Stop()
}

// CheckAll probes every target once, returning the accumulated failures.
func (c *Checker) CheckAll(ctx context.Context) error {
	var errs *multierror.Error

	for _, t := range c.targets {
		st := c.checkOne(ctx, t)
		c.record(st)

		if !st.Healthy {
			errs = multierror.Append(errs, fmt.Errorf("%s: %s", t.Name, st.Detail))
		}
	}

	return errs.ErrorOrNil()
}

// checkOne considers a target healthy while its URL answers at all with a
// non-5xx status; redirects and auth challenges still mean the target is
// serving.
func (c *Checker) checkOne(ctx context.Context, t Target) Status {
	st := Status{
		Target:  t,
		Checked: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		st.Detail = fmt.Sprintf("%v", err)
		return st
	}

	res, err := c.client.Do(req)
	if err != nil {
		st.Detail = fmt.Sprintf("%v", err)
		return st
	}
	_ = res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		st.Detail = fmt.Sprintf("HTTP error %v", res.StatusCode)
		return st
	}

	st.Healthy = true
	return st
}

func (c *Checker) record(st Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses[st.Target.Name] = st

	for sub := range c.subs {
		select {
		case sub <- st:
		default:
			// slow subscriber, drop the update
		}
	}
}

// Snapshot returns the latest status per target, sorted by target name.
// Targets never probed yet are absent.
func (c *Checker) Snapshot() []Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Status, 0, len(c.statuses))
	for _, st := range c.statuses {
		out = append(out, st)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Target.Name < out[j].Target.Name
	})

	return out
}

// Subscribe returns a channel carrying status updates as they are recorded,
// and a cancel function that releases it.
func (c *Checker) Subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 16)

	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	return ch, func() {
		c.mu.Lock()
		delete(c.subs, ch)
		c.mu.Unlock()
	}
}
