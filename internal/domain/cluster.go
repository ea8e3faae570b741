package domain

// Cluster is the set of locations assigned to one driver, kept in input order.
type Cluster struct {
	Centroid Coordinates
	Members  []PointID
}

func (c Cluster) Size() int { return len(c.Members) }
