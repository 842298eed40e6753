// pkg/api/cluster_v1.go
package api

// ClusterMemberV1 is the stable JSONL schema for clustered records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClusterMemberV1 struct {
	ID            string  `json:"id"` // original ranked identifier
	Cluster       int     `json:"cluster"`
	RankInCluster int     `json:"rank_in_cluster"`
	Distance      int     `json:"distance"` // edit distance from the cluster seed
	Reads         int     `json:"reads"`
	RPM           float64 `json:"rpm"`
	Seq           string  `json:"seq"`
}
