package qpi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

/*
Device is a remote backend reached over HTTP. Circuits are serialized to
OpenQASM for submission; status and counts are polled from the job
endpoints. Any transport or API failure propagates to the caller.
*/
type Device struct {
	account   *Account
	name      string
	maxQubits int
	client    *http.Client
}

// NewDevice wires a named remote device to a loaded account.
func NewDevice(account *Account, name string, maxQubits int) *Device {
	return &Device{
		account:   account,
		name:      name,
		maxQubits: maxQubits,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *Device) Name() string      { return d.name }
func (d *Device) MaxQubits() int    { return d.maxQubits }
func (d *Device) IsSimulator() bool { return false }

func (d *Device) do(ctx context.Context, method, url string, payload, into any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+d.account.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %s", method, url, resp.Status)
	}
	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

func (d *Device) Submit(ctx context.Context, c *Circuit, opts RunOptions) (*Job, error) {
	if c.NumQubits > d.maxQubits {
		return nil, fmt.Errorf("circuit needs %d qubits, %s supports %d", c.NumQubits, d.name, d.maxQubits)
	}

	payload := map[string]any{
		"backend":            d.name,
		"qasm":               c.QASM(),
		"shots":              opts.Shots,
		"optimization_level": opts.OptimizationLevel,
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := d.do(ctx, http.MethodPost, d.account.URL+"/jobs", payload, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("device %s returned no job id", d.name)
	}

	job := newJob(d.name)
	job.ID = created.ID
	return job, nil
}

func (d *Device) Status(ctx context.Context, jobID string) (JobStatus, error) {
	var st struct {
		Status string `json:"status"`
	}
	if err := d.do(ctx, http.MethodGet, d.account.URL+"/jobs/"+jobID, nil, &st); err != nil {
		return "", err
	}
	switch st.Status {
	case "queued", "running", "completed", "failed":
		return JobStatus(st.Status), nil
	case "cancelled":
		return JobFailed, nil
	default:
		return "", fmt.Errorf("device %s reported unknown status %q", d.name, st.Status)
	}
}

func (d *Device) Result(ctx context.Context, jobID string) (*Result, error) {
	var res struct {
		Counts map[string]int `json:"counts"`
	}
	if err := d.do(ctx, http.MethodGet, d.account.URL+"/jobs/"+jobID+"/results", nil, &res); err != nil {
		return nil, err
	}
	return &Result{
		JobID:   jobID,
		Backend: d.name,
		Counts:  Counts(res.Counts),
	}, nil
}
