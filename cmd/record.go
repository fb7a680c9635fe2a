package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/candidate-pool/poolctl/internal/poolapi"
	"github.com/candidate-pool/poolctl/internal/validate"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%q is not a numeric record id", raw)
	}
	return id, nil
}

// loadRecord reads a JSON record draft from a file, or from stdin when the
// path is "-".
func loadRecord(path string, record any) error {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("parsing record draft: %w", err)
	}

	return nil
}

// reportIssues prints validation failures one line per field, first issue
// per field only, the same way the edit surface maps them.
func reportIssues(issues []validate.Issue) error {
	printed := make(map[string]bool, len(issues))
	for _, issue := range issues {
		field := issue.Field()
		if printed[field] {
			continue
		}
		printed[field] = true
		fmt.Printf("  %s: %s\n", field, issue.Message)
	}

	return errors.New("the record draft is not valid")
}

func confirm(label string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	prompt := promptui.Select{
		Label: label,
		Items: []string{promptYes, promptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return answer == promptYes, nil
}

// describeFailure rewraps remote failures with the operator-facing hint that
// the backend itself may be down. Capability errors pass through: they
// already say exactly what is unsupported.
func describeFailure(err error, baseURL string) error {
	if err == nil {
		return nil
	}

	var remote *poolapi.RemoteError
	if errors.As(err, &remote) {
		return fmt.Errorf("pool API at %s answered %d: %s (the backend may be unreachable or unhealthy)",
			baseURL, remote.Status, remote.Detail)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("cannot reach the pool API at %s: %w", baseURL, err)
	}

	return err
}
