// Package workflow stores workflow descriptions as JSON files.
//
// Only seed_file, weather_file, measure_paths and steps are interpreted;
// every other key survives a load and save unchanged.
package workflow
