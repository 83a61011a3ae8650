package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"pidash/internal/snapshot/domain"
)

// DockerLister implements the domain ContainerLister interface against
// the local Docker daemon. The client is dialed per call so a daemon
// restart never leaves the API holding a dead connection.
type DockerLister struct{}

// NewDockerLister creates a new Docker container lister
func NewDockerLister() domain.ContainerLister {
	return &DockerLister{}
}

// ListContainers enumerates all containers, running or not
func (l *DockerLister) ListContainers(ctx context.Context) ([]domain.ContainerState, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	defer cli.Close()

	summaries, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	states := make([]domain.ContainerState, 0, len(summaries))
	for _, summary := range summaries {
		name := ""
		if len(summary.Names) > 0 {
			// The daemon reports names with a leading slash
			name = strings.TrimPrefix(summary.Names[0], "/")
		}
		states = append(states, domain.ContainerState{
			Name:  name,
			State: summary.State,
			Image: summary.Image,
		})
	}

	return states, nil
}
