// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
)

func renderBuildInfoWindow(client models.AppBuildInfo, server *models.AppBuildInfo, serverErr error) string {
	var b strings.Builder

	b.WriteString("Application: GoAuthKeeper\n\n")
	b.WriteString("Client\n")
	writeBuildInfo(&b, client)

	b.WriteString("\nServer\n")
	switch {
	case serverErr != nil:
		b.WriteString("  ")
		b.WriteString(humanizeError(serverErr))
		b.WriteString("\n")
	case server == nil:
		b.WriteString("  Loading...\n")
	default:
		writeBuildInfo(&b, *server)
	}

	return renderPage("ABOUT", overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n")), "esc: back")
}

func writeBuildInfo(b *strings.Builder, info models.AppBuildInfo) {
	b.WriteString("  Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n  Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n  Commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
}
