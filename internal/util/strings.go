package util

import (
	"strings"
	"sync"
)

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(128)
		return sb
	},
}

// GetStringBuilder takes a reset builder from the pool.
// Return it with [FreeStringBuilder] once the result has been copied out.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
