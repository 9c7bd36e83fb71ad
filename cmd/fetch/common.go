package fetch

import (
	"context"
	"net/http"

	"github.com/cloudflare/cloudflare-go"
)

// NewCloudflareClient builds an API-token client. Requests are sent once,
// the SDK's retry policy is switched off, and the transport keeps the raw
// status and body of project lookups.
func NewCloudflareClient(token string, opts ...cloudflare.Option) (*cloudflare.API, error) {
	opts = append([]cloudflare.Option{
		cloudflare.UsingRetryPolicy(0, 0, 0),
		cloudflare.HTTPClient(&http.Client{Transport: capturingTransport{}}),
	}, opts...)
	return cloudflare.NewWithAPIToken(token, opts...)
}

// Pages binds the lookup functions to one client.
type Pages struct {
	API *cloudflare.API
}

func (p Pages) GetProject(ctx context.Context, accountID, projectName string) (cloudflare.PagesProject, error) {
	return GetPagesProject(ctx, p.API, accountID, projectName)
}

func (p Pages) LatestDeployment(ctx context.Context, accountID, projectName string) (cloudflare.PagesProjectDeployment, error) {
	return LatestPagesDeployment(ctx, p.API, accountID, projectName)
}
