// SPDX-License-Identifier: EPL-2.0

package config

import "strings"

func (c *Config) normalize() {
	c.normalizePipeline()
	c.normalizeLogging()
}

func (c *Config) normalizePipeline() {
	faces := make([]string, 0, len(c.Pipeline.Faces))
	for _, f := range c.Pipeline.Faces {
		// "L,R" in a single entry is accepted as two faces.
		for part := range strings.SplitSeq(f, ",") {
			if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
				faces = append(faces, part)
			}
		}
	}
	c.Pipeline.Faces = faces
	c.Pipeline.RescaleFlat = strings.ToLower(strings.TrimSpace(c.Pipeline.RescaleFlat))
	c.Pipeline.Tail = strings.ToLower(strings.TrimSpace(c.Pipeline.Tail))
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
