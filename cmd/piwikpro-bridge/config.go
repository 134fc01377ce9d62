package main

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath

	logFormat
	debugClient
)

func DefaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",

		configPath: "/opt/diwise/config/bridge.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		logFormat:   "json",
		debugClient: "false",
	}
}

// parseExternalConfig lets the environment override the default flags.
func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {
	flags[listenAddress] = env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = env.GetVariableOrDefault(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = env.GetVariableOrDefault(ctx, "BRIDGE_CONFIG_PATH", flags[configPath])
	flags[opaPath] = env.GetVariableOrDefault(ctx, "BRIDGE_POLICIES_PATH", flags[opaPath])
	flags[logFormat] = env.GetVariableOrDefault(ctx, "LOG_FORMAT", flags[logFormat])
	flags[debugClient] = env.GetVariableOrDefault(ctx, "DEBUG_CLIENT", flags[debugClient])

	return flags
}
