package services

import (
	"fmt"
	"route-planner-service/internal/config"
)

// PlanOptionsFromEnv reads CLUSTER_MAX_ITERATIONS, CLUSTER_EPSILON,
// CLUSTER_EMPTY_POLICY and ROUTE_WORKERS on top of the defaults.
func PlanOptionsFromEnv() (PlanOptions, error) {
	opts := DefaultPlanOptions()

	opts.Cluster.MaxIterations = config.GetInt("CLUSTER_MAX_ITERATIONS", opts.Cluster.MaxIterations)
	opts.Cluster.Epsilon = config.GetFloat("CLUSTER_EPSILON", opts.Cluster.Epsilon)
	opts.Workers = config.GetInt("ROUTE_WORKERS", opts.Workers)

	policy, err := ParseEmptyClusterPolicy(config.Get("CLUSTER_EMPTY_POLICY", "reseed"))
	if err != nil {
		return PlanOptions{}, fmt.Errorf("plan options: %w", err)
	}
	opts.Cluster.EmptyPolicy = policy

	return opts, nil
}
