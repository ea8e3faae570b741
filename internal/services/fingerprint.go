package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"route-planner-service/internal/domain"
)

// Fingerprint derives a stable cache key from a request and the clustering
// options that shape its result. Planning is deterministic, so equal keys
// always map to equal routes and priority orders.
func Fingerprint(req *domain.PlanRequest, opts ClusterOptions) (string, error) {
	payload := struct {
		Request *domain.PlanRequest `json:"request"`
		MaxIter int                 `json:"max_iterations"`
		Epsilon float64             `json:"epsilon"`
		Policy  EmptyClusterPolicy  `json:"empty_policy"`
	}{req, opts.MaxIterations, opts.Epsilon, opts.EmptyPolicy}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint request: %w", err)
	}

	sum := sha256.Sum256(b)
	return "plan:" + hex.EncodeToString(sum[:]), nil
}
