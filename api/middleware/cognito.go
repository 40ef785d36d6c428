package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Header set by the ALB after the user signs in through Cognito.
const AccessTokenHeader = "x-amzn-oidc-accesstoken"

const (
	LocalSubject  = "sub"
	LocalUsername = "username"
	LocalScope    = "scope"
	LocalGroups   = "groups"

	jwksTimeout = 5 * time.Second
)

type CognitoConfig struct {
	Region     string
	UserPoolID string
	ClientID   string
}

type CognitoVerifier struct {
	issuer   string
	jwksURL  string
	clientID string
	cache    *jwk.Cache
}

func NewCognitoVerifier(cfg CognitoConfig) (*CognitoVerifier, error) {
	if cfg.Region == "" {
		return nil, errors.New("Region is required")
	}

	if cfg.UserPoolID == "" {
		return nil, errors.New("UserPoolID is required")
	}

	issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.Region, cfg.UserPoolID)

	return NewCognitoVerifierWithURLs(cfg, issuer, issuer+"/.well-known/jwks.json")
}

// NewCognitoVerifierWithURLs lets tests point the verifier at a local issuer and JWKS.
func NewCognitoVerifierWithURLs(cfg CognitoConfig, issuer, jwksURL string) (*CognitoVerifier, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("ClientID is required")
	}

	if issuer == "" {
		return nil, errors.New("issuer is required")
	}

	if jwksURL == "" {
		return nil, errors.New("jwksURL is required")
	}

	cache := jwk.NewCache(context.Background())
	if err := cache.Register(jwksURL); err != nil {
		return nil, fmt.Errorf("register jwks: %w", err)
	}

	return &CognitoVerifier{
		issuer:   issuer,
		jwksURL:  jwksURL,
		clientID: cfg.ClientID,
		cache:    cache,
	}, nil
}

func (v *CognitoVerifier) FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(AccessTokenHeader)
		if raw == "" {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), jwksTimeout)
		defer cancel()

		keyset, err := v.cache.Get(ctx, v.jwksURL)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unable to load jwks")
		}

		tok, err := jwt.Parse(
			[]byte(raw),
			jwt.WithKeySet(keyset),
			jwt.WithValidate(true),
			jwt.WithIssuer(v.issuer),
			jwt.WithClaimValue("token_use", "access"),
		)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// access tokens carry the app client in "client_id", not "aud"
		if cid, ok := tok.Get("client_id"); !ok || cid != v.clientID {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalSubject, tok.Subject())
		if username, ok := tok.Get("username"); ok {
			c.Locals(LocalUsername, username)
		}
		if scope, ok := tok.Get("scope"); ok {
			c.Locals(LocalScope, scope)
		}
		if groups, ok := tok.Get("cognito:groups"); ok {
			c.Locals(LocalGroups, groups)
		}

		return c.Next()
	}
}
