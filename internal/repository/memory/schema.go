package memory

import "github.com/hashicorp/go-memdb"

const (
	tblDocuments  = "documents"
	tblActivities = "activities"
	tblStats      = "stats"
	tblWorkflow   = "workflow"
	tblNavigation = "navigation"
)

// row wraps a record with the keys memdb indexes on.
// Seq is a zero-padded insertion counter so iterating the "seq" index yields seed order.
type row struct {
	Seq    string
	Key    string
	Status string
	Value  any
}

func orderedTable(name string, extra map[string]*memdb.IndexSchema) *memdb.TableSchema {
	indexes := map[string]*memdb.IndexSchema{
		"id": {
			Name:    "id",
			Unique:  true,
			Indexer: &memdb.StringFieldIndex{Field: "Key"},
		},
		"seq": {
			Name:    "seq",
			Unique:  true,
			Indexer: &memdb.StringFieldIndex{Field: "Seq"},
		},
	}
	for k, v := range extra {
		indexes[k] = v
	}
	return &memdb.TableSchema{Name: name, Indexes: indexes}
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblDocuments: orderedTable(tblDocuments, map[string]*memdb.IndexSchema{
			"status": {
				Name:    "status",
				Indexer: &memdb.StringFieldIndex{Field: "Status"},
			},
		}),
		tblActivities: orderedTable(tblActivities, nil),
		tblStats:      orderedTable(tblStats, nil),
		tblWorkflow:   orderedTable(tblWorkflow, nil),
		tblNavigation: orderedTable(tblNavigation, nil),
	},
}
