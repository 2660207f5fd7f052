// Package seed ships the embedded demo catalog: the actors, jobs,
// applications and notifications the platform starts with when no
// external data source is configured.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"gigmatch/internal/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Data is the decoded seed catalog. Slices preserve fixture order.
type Data struct {
	Actors        []*models.Actor
	Jobs          []*models.Job
	Applications  []*models.JobApplication
	Notifications []models.Notification
}

// Load validates every embedded fixture against its schema and decodes
// it. Any schema violation fails the whole load.
func Load() (*Data, error) {
	d := &Data{}

	if err := loadFixture("fixtures/actors.json", actorsSchema, &d.Actors); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/jobs.json", jobsSchema, &d.Jobs); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/applications.json", applicationsSchema, &d.Applications); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/notifications.json", notificationsSchema, &d.Notifications); err != nil {
		return nil, err
	}

	return d, nil
}

func loadFixture(name, schema string, out interface{}) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}

	if err := validate(name, schema, raw); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func validate(name, schema string, raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate fixture %s: %w", name, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("fixture %s is invalid: %s", name, strings.Join(problems, "; "))
	}
	return nil
}
