/*
Package desksdk is the Go client for the clientdesk service.

It has two layers. SDKClient and Session are thin request functions: each
call sends one HTTP request and returns the decoded result or an *APIError.
Workspace sits on top of a Session and owns the signed-in user's in-memory
view (clients, domains, hosting, users), applying changes only after the
service accepted them.

# Basic Usage

	client := desksdk.NewSDKClient("http://localhost:8080")
	session := client.NewSession(accessToken)

	resp, err := session.StartSession(ctx)
	if err != nil {
		return err
	}
	if resp.Warning != "" {
		fmt.Println(resp.Warning)
	}

	created, err := session.CreateClient(ctx, desksdk.ClientRequest{
		Name:  "Acme",
		Email: "ops@acme.io",
	})

# Validation

Request types carry the same Validate methods the service runs, so forms can
be checked before a round trip:

	if errs := req.Validate(); errs != nil {
		for field, msg := range errs {
			fmt.Printf("%s: %s\n", field, msg)
		}
	}

# Workspace

	ws := desksdk.NewWorkspace(session, logger)
	if err := ws.HandleAuthEvent(ctx, desksdk.AuthEvent{Kind: desksdk.SignedIn, Token: token, Subject: sub}); err != nil {
		return err
	}
	stats := ws.Stats()

Workspace methods are safe for concurrent use.
*/
package desksdk
