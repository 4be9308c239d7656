package smccc

import "github.com/sarchlab/esrdec/field"

// decodeTrustedAppService names the Trusted Application Call function
// numbers. Individual trusted applications define their own spaces, so
// only the general queries are resolvable.
func decodeTrustedAppService(fid uint64) field.Info {
	return functionNumber(fid).Describe(describeGeneralQueries32)
}
