package cache

import (
	"fmt"
	"time"
)

const (
	PolicyKeyPrefix = "policy:%d"
	GenresKey       = "catalog:genres"
	RegionsKey      = "catalog:regions"
)

const (
	PolicyTTL = 30 * time.Minute
	FacetTTL  = 10 * time.Minute
)

func PolicyKey(policyID uint) string {
	return fmt.Sprintf(PolicyKeyPrefix, policyID)
}
