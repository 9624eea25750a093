// Package config provides configuration loading, merging, and validation
// facilities for the challan-desk client.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for non-zero fields, later sources fill gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which builds the merged
// [StructuredConfig] and maps it to the client-facing [ClientConfig] view.
package config
