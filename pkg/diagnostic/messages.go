/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diagnostic

const (
	msgMissingField    = "Missing Car Info: %s"
	msgNoParts         = "Vehicle missing all parts. Ending diagnostic."
	msgMissingPart     = "Missing Part(s) Detected: %s - Count: %d"
	msgDamagedPart     = "Damaged Part Detected: %s - Condition: %s"
	msgFieldsFailed    = "Please enter required vehicle information. Ending diagnostic."
	msgPresenceFailed  = "Vehicle is missing parts. Ending diagnostic."
	msgConditionFailed = "Vehicle has damaged parts. Ending diagnostic."
	msgSuccess         = "Your %s %s %s vehicle is in working condition!"
)
