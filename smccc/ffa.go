package smccc

// Firmware Framework for A-profile (FF-A) function numbers within the
// Standard Secure Service Call range.
const (
	ffaError             = 0x60
	ffaSuccess           = 0x61
	ffaInterrupt         = 0x62
	ffaVersion           = 0x63
	ffaFeatures          = 0x64
	ffaRxRelease         = 0x65
	ffaRxtxMap           = 0x66
	ffaRxtxUnmap         = 0x67
	ffaPartitionInfoGet  = 0x68
	ffaIDGet             = 0x69
	ffaMsgPoll           = 0x6A
	ffaMsgWait           = 0x6B
	ffaYield             = 0x6C
	ffaRun               = 0x6D
	ffaMsgSend           = 0x6E
	ffaMsgSendDirectReq  = 0x6F
	ffaMsgSendDirectResp = 0x70
	ffaMemDonate         = 0x71
	ffaMemLend           = 0x72
	ffaMemShare          = 0x73
	ffaMemRetrieveReq    = 0x74
	ffaMemRetrieveResp   = 0x75
	ffaMemRelinquish     = 0x76
	ffaMemReclaim        = 0x77
	ffaMemOpPause        = 0x78
	ffaMemOpResume       = 0x79
	ffaMemFragRx         = 0x7A
	ffaMemFragTx         = 0x7B
	ffaNormalWorldResume = 0x7C
)

// ffaFunction32 names an FF-A function number called through the SMC32
// convention.
func ffaFunction32(function uint64) (string, bool) {
	switch function {
	case ffaError:
		return "FFA_ERROR_32", true
	case ffaSuccess:
		return "FFA_SUCCESS_32", true
	case ffaInterrupt:
		return "FFA_INTERRUPT_32", true
	case ffaVersion:
		return "FFA_VERSION_32", true
	case ffaFeatures:
		return "FFA_FEATURES_32", true
	case ffaRxRelease:
		return "FFA_RX_RELEASE_32", true
	case ffaRxtxMap:
		return "FFA_RXTX_MAP_32", true
	case ffaRxtxUnmap:
		return "FFA_RXTX_UNMAP_32", true
	case ffaPartitionInfoGet:
		return "FFA_PARTITION_INFO_GET_32", true
	case ffaIDGet:
		return "FFA_ID_GET_32", true
	case ffaMsgPoll:
		return "FFA_MSG_POLL_32", true
	case ffaMsgWait:
		return "FFA_MSG_WAIT_32", true
	case ffaYield:
		return "FFA_YIELD_32", true
	case ffaRun:
		return "FFA_RUN_32", true
	case ffaMsgSend:
		return "FFA_MSG_SEND_32", true
	case ffaMsgSendDirectReq:
		return "FFA_MSG_SEND_DIRECT_REQ_32", true
	case ffaMsgSendDirectResp:
		return "FFA_MSG_SEND_DIRECT_RESP_32", true
	case ffaMemDonate:
		return "FFA_MEM_DONATE_32", true
	case ffaMemLend:
		return "FFA_MEM_LEND_32", true
	case ffaMemShare:
		return "FFA_MEM_SHARE_32", true
	case ffaMemRetrieveReq:
		return "FFA_MEM_RETRIEVE_REQ_32", true
	case ffaMemRetrieveResp:
		return "FFA_MEM_RETRIEVE_RESP_32", true
	case ffaMemRelinquish:
		return "FFA_MEM_RELINQUISH_32", true
	case ffaMemReclaim:
		return "FFA_MEM_RECLAIM_32", true
	case ffaMemOpPause:
		return "FFA_MEM_OP_PAUSE", true
	case ffaMemOpResume:
		return "FFA_MEM_OP_RESUME", true
	case ffaMemFragRx:
		return "FFA_MEM_FRAG_RX_32", true
	case ffaMemFragTx:
		return "FFA_MEM_FRAG_TX_32", true
	case ffaNormalWorldResume:
		return "FFA_NORMAL_WORLD_RESUME", true
	default:
		return "", false
	}
}

// ffaFunction64 names the subset of FF-A functions with a distinct SMC64
// convention encoding.
func ffaFunction64(function uint64) (string, bool) {
	switch function {
	case ffaRxtxMap:
		return "FFA_RXTX_MAP_64", true
	case ffaMsgSendDirectReq:
		return "FFA_MSG_SEND_DIRECT_REQ_64", true
	case ffaMsgSendDirectResp:
		return "FFA_MSG_SEND_DIRECT_RESP_64", true
	case ffaMemDonate:
		return "FFA_MEM_DONATE_64", true
	case ffaMemLend:
		return "FFA_MEM_LEND_64", true
	case ffaMemShare:
		return "FFA_MEM_SHARE_64", true
	case ffaMemRetrieveReq:
		return "FFA_MEM_RETRIEVE_REQ_64", true
	default:
		return "", false
	}
}
