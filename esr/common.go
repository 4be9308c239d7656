package esr

// describeCV is shared by the AArch32 trap classes that carry a condition
// code in the ISS.
func describeCV(cv bool) string {
	if cv {
		return "COND is valid"
	}
	return "COND is not valid"
}
