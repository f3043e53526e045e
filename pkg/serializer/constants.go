/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

// StdoutURI is the special path selecting stdout for writers and stdin for readers.
const StdoutURI = "-"
