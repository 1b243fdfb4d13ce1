package plan

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/models"
	aws "ecsdeployer/internal/providers/aws"
	"ecsdeployer/pkg/logging"
)

// Builder diffs the desired state against the observed remote state and
// produces the ordered list of change operations. Operations follow the
// hard dependency order cluster -> task definition -> service -> networking;
// anything already matching is omitted, never replaced with a no-op.
type Builder struct {
	provider aws.DeploymentServiceAPI
	logger   logging.Logger
}

// NewBuilder creates a plan builder using the given provider for pre-flight
// checks.
func NewBuilder(provider aws.DeploymentServiceAPI, logger logging.Logger) *Builder {
	return &Builder{
		provider: provider,
		logger:   logger,
	}
}

// Build runs the pre-flight checks and returns the ordered change
// operations. An empty plan means the remote state already matches the spec.
func (b *Builder) Build(ctx context.Context, spec *models.DeploymentSpec, remote *models.RemoteState) ([]models.ChangeOperation, error) {
	if err := b.preflight(ctx, spec); err != nil {
		return nil, err
	}

	var ops []models.ChangeOperation

	if remote.Cluster == nil {
		ops = append(ops, models.ChangeOperation{
			Kind:        models.OpCreateCluster,
			Reason:      fmt.Sprintf("cluster %q does not exist", spec.ClusterName),
			ClusterName: spec.ClusterName,
		})
	}

	needTaskDef, taskDefReason := taskDefinitionDrift(spec, remote.TaskDefinition)
	if needTaskDef {
		ops = append(ops, models.ChangeOperation{
			Kind:        models.OpRegisterTaskDefinition,
			Reason:      taskDefReason,
			ClusterName: spec.ClusterName,
			Spec:        spec,
		})
	}

	if remote.Service == nil {
		ops = append(ops, models.ChangeOperation{
			Kind:          models.OpUpdateService,
			Reason:        fmt.Sprintf("service %q does not exist", spec.ServiceName),
			ClusterName:   spec.ClusterName,
			Spec:          spec,
			CreateService: true,
		})
	} else if needTaskDef || remote.Service.DesiredCount != spec.DesiredCount {
		reason := "service must run the new task-definition revision"
		if !needTaskDef {
			reason = fmt.Sprintf("desired count %d does not match declared %d",
				remote.Service.DesiredCount, spec.DesiredCount)
		}
		ops = append(ops, models.ChangeOperation{
			Kind:        models.OpUpdateService,
			Reason:      reason,
			ClusterName: spec.ClusterName,
			Spec:        spec,
			// Rollback anchor: the revision the service runs right now.
			PreviousTaskDefinitionARN: remote.Service.TaskDefinitionARN,
		})
	}

	if spec.SecurityGroupID != "" {
		authorize, revoke := diffIngressRules(spec, remote.SecurityGroup)
		if len(authorize) > 0 || len(revoke) > 0 {
			ops = append(ops, models.ChangeOperation{
				Kind: models.OpUpdateNetworking,
				Reason: fmt.Sprintf("security group %q ingress rules do not match (%d to authorize, %d to revoke)",
					spec.SecurityGroupID, len(authorize), len(revoke)),
				ClusterName:     spec.ClusterName,
				SecurityGroupID: spec.SecurityGroupID,
				AuthorizeRules:  authorize,
				RevokeRules:     revoke,
			})
		}
	}

	b.logger.Info("Planned %d operation(s) for service %q", len(ops), spec.ServiceName)
	for i, op := range ops {
		b.logger.Debug("Plan step %d: %s (%s)", i, op.Kind, op.Reason)
	}

	return ops, nil
}

// preflight verifies the declared network placement exists in the remote
// account before anything is planned. The checks are read-only and
// independent, so they run concurrently.
func (b *Builder) preflight(ctx context.Context, spec *models.DeploymentSpec) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		missing, err := b.provider.MissingSubnets(gctx, spec.Subnets)
		if err != nil {
			return deploy.NewValidationError("pre-flight subnet check failed", err)
		}
		if len(missing) > 0 {
			return deploy.NewValidationError(
				fmt.Sprintf("subnets do not exist in the target account: %s", strings.Join(missing, ", ")), nil)
		}
		return nil
	})

	if spec.SecurityGroupID != "" {
		g.Go(func() error {
			exists, err := b.provider.SecurityGroupExists(gctx, spec.SecurityGroupID)
			if err != nil {
				return deploy.NewValidationError("pre-flight security group check failed", err)
			}
			if !exists {
				return deploy.NewValidationError(
					fmt.Sprintf("security group %q does not exist in the target account", spec.SecurityGroupID), nil)
			}
			return nil
		})
	}

	return g.Wait()
}

// taskDefinitionDrift reports whether a new task-definition revision is
// needed and why.
func taskDefinitionDrift(spec *models.DeploymentSpec, remote *models.TaskDefinitionState) (bool, string) {
	if remote == nil {
		return true, "no task-definition revision is registered"
	}

	switch {
	case remote.Image != spec.Image:
		return true, fmt.Sprintf("image %q does not match declared %q", remote.Image, spec.Image)
	case remote.CPU != spec.CPU:
		return true, fmt.Sprintf("cpu %d does not match declared %d", remote.CPU, spec.CPU)
	case remote.Memory != spec.Memory:
		return true, fmt.Sprintf("memory %d does not match declared %d", remote.Memory, spec.Memory)
	case remote.Port != spec.Port:
		return true, fmt.Sprintf("port %d does not match declared %d", remote.Port, spec.Port)
	}

	return false, ""
}

// diffIngressRules computes the declared rules missing from the group and
// the undeclared rules sitting on protocol/port pairs the descriptor claims.
// Rules on pairs the descriptor does not mention are left alone, so a udp
// rule never gets revoked because a tcp rule claims the same port.
func diffIngressRules(spec *models.DeploymentSpec, remote *models.SecurityGroupState) (authorize, revoke []models.SecurityGroupRule) {
	var remoteRules []models.SecurityGroupRule
	if remote != nil {
		remoteRules = remote.Rules
	}

	type portKey struct {
		protocol string
		port     int32
	}

	declared := make(map[portKey]bool, len(spec.SecurityGroupRules))
	for _, rule := range spec.SecurityGroupRules {
		declared[portKey{rule.Protocol, rule.Port}] = true
		if !containsRule(remoteRules, rule) {
			authorize = append(authorize, rule)
		}
	}

	for _, rule := range remoteRules {
		if declared[portKey{rule.Protocol, rule.Port}] && !containsRule(spec.SecurityGroupRules, rule) {
			revoke = append(revoke, rule)
		}
	}

	return authorize, revoke
}

func containsRule(rules []models.SecurityGroupRule, target models.SecurityGroupRule) bool {
	for _, rule := range rules {
		if rule == target {
			return true
		}
	}
	return false
}
