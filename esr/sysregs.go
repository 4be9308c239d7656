package esr

// sysregKey is the (Op0, Op1, CRn, CRm, Op2) encoding of a system
// register access.
type sysregKey struct {
	op0, op1, crn, crm, op2 uint8
}

// sysregName resolves a system register encoding to its architected name.
func sysregName(op0, op1, crn, crm, op2 uint64) (string, bool) {
	name, ok := sysregNames[sysregKey{
		op0: uint8(op0),
		op1: uint8(op1),
		crn: uint8(crn),
		crm: uint8(crm),
		op2: uint8(op2),
	}]
	return name, ok
}

// sysregNames covers the architected AArch64 system registers most likely
// to appear in MSR/MRS trap syndromes. The list follows the Arm ARM
// register index; encodings not listed here render by their numeric form.
var sysregNames = map[sysregKey]string{
	// Debug registers (op0 == 2).
	{2, 0, 0, 0, 4}: "DBGBVR0_EL1",
	{2, 0, 0, 0, 5}: "DBGBCR0_EL1",
	{2, 0, 0, 0, 6}: "DBGWVR0_EL1",
	{2, 0, 0, 0, 7}: "DBGWCR0_EL1",
	{2, 0, 0, 2, 2}: "MDSCR_EL1",
	{2, 0, 1, 0, 4}: "OSLAR_EL1",
	{2, 0, 1, 1, 4}: "OSLSR_EL1",
	{2, 3, 0, 1, 0}: "MDCCSR_EL0",

	// Identification registers.
	{3, 0, 0, 0, 0}: "MIDR_EL1",
	{3, 0, 0, 0, 5}: "MPIDR_EL1",
	{3, 0, 0, 0, 6}: "REVIDR_EL1",
	{3, 0, 0, 4, 0}: "ID_AA64PFR0_EL1",
	{3, 0, 0, 4, 1}: "ID_AA64PFR1_EL1",
	{3, 0, 0, 4, 4}: "ID_AA64ZFR0_EL1",
	{3, 0, 0, 5, 0}: "ID_AA64DFR0_EL1",
	{3, 0, 0, 5, 1}: "ID_AA64DFR1_EL1",
	{3, 0, 0, 6, 0}: "ID_AA64ISAR0_EL1",
	{3, 0, 0, 6, 1}: "ID_AA64ISAR1_EL1",
	{3, 0, 0, 7, 0}: "ID_AA64MMFR0_EL1",
	{3, 0, 0, 7, 1}: "ID_AA64MMFR1_EL1",
	{3, 0, 0, 7, 2}: "ID_AA64MMFR2_EL1",
	{3, 1, 0, 0, 0}: "CCSIDR_EL1",
	{3, 1, 0, 0, 1}: "CLIDR_EL1",
	{3, 1, 0, 0, 7}: "AIDR_EL1",
	{3, 2, 0, 0, 0}: "CSSELR_EL1",
	{3, 3, 0, 0, 1}: "CTR_EL0",
	{3, 3, 0, 0, 7}: "DCZID_EL0",

	// EL1 system control and memory registers.
	{3, 0, 1, 0, 0}:  "SCTLR_EL1",
	{3, 0, 1, 0, 1}:  "ACTLR_EL1",
	{3, 0, 1, 0, 2}:  "CPACR_EL1",
	{3, 0, 2, 0, 0}:  "TTBR0_EL1",
	{3, 0, 2, 0, 1}:  "TTBR1_EL1",
	{3, 0, 2, 0, 2}:  "TCR_EL1",
	{3, 0, 4, 0, 0}:  "SPSR_EL1",
	{3, 0, 4, 0, 1}:  "ELR_EL1",
	{3, 0, 4, 1, 0}:  "SP_EL0",
	{3, 0, 4, 2, 0}:  "SPSel",
	{3, 0, 4, 2, 2}:  "CurrentEL",
	{3, 0, 4, 2, 3}:  "PAN",
	{3, 0, 4, 2, 4}:  "UAO",
	{3, 0, 5, 1, 0}:  "AFSR0_EL1",
	{3, 0, 5, 1, 1}:  "AFSR1_EL1",
	{3, 0, 5, 2, 0}:  "ESR_EL1",
	{3, 0, 6, 0, 0}:  "FAR_EL1",
	{3, 0, 7, 4, 0}:  "PAR_EL1",
	{3, 0, 10, 2, 0}: "MAIR_EL1",
	{3, 0, 10, 3, 0}: "AMAIR_EL1",
	{3, 0, 12, 0, 0}: "VBAR_EL1",
	{3, 0, 12, 1, 0}: "ISR_EL1",
	{3, 0, 13, 0, 1}: "CONTEXTIDR_EL1",
	{3, 0, 13, 0, 4}: "TPIDR_EL1",
	{3, 0, 14, 1, 0}: "CNTKCTL_EL1",

	// EL0 registers.
	{3, 3, 4, 2, 0}:  "NZCV",
	{3, 3, 4, 2, 1}:  "DAIF",
	{3, 3, 4, 4, 0}:  "FPCR",
	{3, 3, 4, 4, 1}:  "FPSR",
	{3, 3, 13, 0, 2}: "TPIDR_EL0",
	{3, 3, 13, 0, 3}: "TPIDRRO_EL0",
	{3, 3, 14, 0, 0}: "CNTFRQ_EL0",
	{3, 3, 14, 0, 1}: "CNTPCT_EL0",
	{3, 3, 14, 0, 2}: "CNTVCT_EL0",
	{3, 3, 14, 2, 0}: "CNTP_TVAL_EL0",
	{3, 3, 14, 2, 1}: "CNTP_CTL_EL0",
	{3, 3, 14, 2, 2}: "CNTP_CVAL_EL0",
	{3, 3, 14, 3, 0}: "CNTV_TVAL_EL0",
	{3, 3, 14, 3, 1}: "CNTV_CTL_EL0",
	{3, 3, 14, 3, 2}: "CNTV_CVAL_EL0",

	// EL2 registers.
	{3, 4, 1, 0, 0}:  "SCTLR_EL2",
	{3, 4, 1, 1, 0}:  "HCR_EL2",
	{3, 4, 1, 1, 1}:  "MDCR_EL2",
	{3, 4, 1, 1, 2}:  "CPTR_EL2",
	{3, 4, 1, 1, 3}:  "HSTR_EL2",
	{3, 4, 2, 0, 0}:  "TTBR0_EL2",
	{3, 4, 2, 0, 2}:  "TCR_EL2",
	{3, 4, 2, 1, 0}:  "VTTBR_EL2",
	{3, 4, 2, 1, 2}:  "VTCR_EL2",
	{3, 4, 4, 0, 0}:  "SPSR_EL2",
	{3, 4, 4, 0, 1}:  "ELR_EL2",
	{3, 4, 4, 1, 0}:  "SP_EL1",
	{3, 4, 5, 2, 0}:  "ESR_EL2",
	{3, 4, 6, 0, 0}:  "FAR_EL2",
	{3, 4, 6, 0, 4}:  "HPFAR_EL2",
	{3, 4, 12, 0, 0}: "VBAR_EL2",
	{3, 4, 13, 0, 2}: "TPIDR_EL2",
	{3, 4, 14, 1, 0}: "CNTHCTL_EL2",

	// EL3 registers.
	{3, 6, 1, 0, 0}:  "SCTLR_EL3",
	{3, 6, 1, 1, 0}:  "SCR_EL3",
	{3, 6, 2, 0, 0}:  "TTBR0_EL3",
	{3, 6, 2, 0, 2}:  "TCR_EL3",
	{3, 6, 4, 0, 0}:  "SPSR_EL3",
	{3, 6, 4, 0, 1}:  "ELR_EL3",
	{3, 6, 5, 2, 0}:  "ESR_EL3",
	{3, 6, 6, 0, 0}:  "FAR_EL3",
	{3, 6, 12, 0, 0}: "VBAR_EL3",
}
