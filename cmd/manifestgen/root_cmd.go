package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"

	"github.com/fluxcd/manifestgen/pkg/fragment"
	"github.com/fluxcd/manifestgen/pkg/generate"
	"github.com/fluxcd/manifestgen/pkg/manifests"
)

// The kinds that manage pods; if the fragments declare none of these,
// a default Deployment is synthesized around the computed containers.
var controllerKinds = []string{
	"CronJob", "DaemonSet", "Deployment", "DeploymentConfig",
	"Job", "ReplicaSet", "ReplicationController", "StatefulSet",
}

type rootOpts struct {
	configFile  string
	resourceDir string
	targetDir   string
	appName     string
	format      string

	coreVersion       string
	extensionsVersion string
	appsVersion       string
}

func newRoot() *rootOpts {
	return &rootOpts{}
}

var rootLongHelp = strings.TrimSpace(`
manifestgen assembles complete Kubernetes resource manifests from
partial resource fragments and a project's image configuration.

Fragment files are named <name>[-<type>].(yaml|yml|json); the type
token (e.g. 'svc', 'rc', 'deployment') gives the resource its kind,
and missing kind, apiVersion and metadata.name fields are filled in
without overriding anything the fragment declares itself.
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "manifestgen",
		Long:         rootLongHelp,
		SilenceUsage: true,
		RunE:         opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "manifestgen.yaml", "project configuration file")
	cmd.Flags().StringVarP(&opts.resourceDir, "resource-dir", "r", "resources", "directory holding resource fragments")
	cmd.Flags().StringVarP(&opts.targetDir, "target-dir", "t", "manifests", "directory to write generated manifests to")
	cmd.Flags().StringVar(&opts.appName, "app-name", "", "resource name used when neither fragment nor file name gives one (defaults to the project artifact id)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", `output format, "yaml" or "json"`)
	cmd.Flags().StringVar(&opts.coreVersion, "api-version", fragment.DefaultVersioning.Core, "apiVersion for core resources")
	cmd.Flags().StringVar(&opts.extensionsVersion, "extensions-api-version", fragment.DefaultVersioning.Extensions, "apiVersion for extensions group resources")
	cmd.Flags().StringVar(&opts.appsVersion, "apps-api-version", fragment.DefaultVersioning.Apps, "apiVersion for apps group resources")
	return cmd
}

func (opts *rootOpts) RunE(cmd *cobra.Command, _ []string) error {
	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	config, err := generate.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	appName := opts.appName
	if appName == "" {
		appName = config.Project.ArtifactID
	}

	versions := fragment.Versioning{
		Core:       opts.coreVersion,
		Extensions: opts.extensionsVersion,
		Apps:       opts.appsVersion,
	}
	kinds := fragment.NewKindMapping()
	enricher := fragment.Enricher{Versions: versions, Kinds: kinds}

	collection, err := manifests.LoadCollection(enricher, opts.resourceDir, appName, log.With(logger, "component", "manifests"))
	if err != nil {
		return err
	}

	assembler := generate.Assembler{Project: config.Project}
	containers, err := assembler.Containers(config.Resource, config.Images)
	if err != nil {
		return err
	}
	defaultPodSpec := corev1.PodSpec{Containers: containers}

	fallbackName := appName
	for _, img := range config.Images {
		if img.Build != nil {
			fallbackName = assembler.ContainerName(img)
			break
		}
	}

	for _, workload := range collection.Workloads() {
		podSpec := workload.PodSpec()
		generate.MergePodSpec(&podSpec, defaultPodSpec, fallbackName)
		if err := workload.SetPodSpec(podSpec); err != nil {
			return err
		}
	}

	if len(containers) > 0 && !collection.HasKind(controllerKinds...) {
		content, err := generate.DefaultDeployment(appName, versions.ForKind("Deployment"), defaultPodSpec)
		if err != nil {
			return err
		}
		r, err := manifests.ParseResource("", content)
		if err != nil {
			return err
		}
		collection.Add(r)
		logger.Log("synthesized", "Deployment", "name", appName)
	}

	// Conflicting selectors across controllers would produce manifests
	// that fight each other; refuse to emit them.
	if _, err := collection.PodLabelSelector(); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.targetDir, 0755); err != nil {
		return err
	}
	format := manifests.Format(opts.format)
	for _, r := range collection.Resources() {
		target := filepath.Join(opts.targetDir, kinds.NameWithSuffix(r.GetName(), r.GetKind()))
		path, err := manifests.Write(r, target, format)
		if err != nil {
			return err
		}
		logger.Log("wrote", path, "kind", r.GetKind(), "name", r.GetName())
	}
	return nil
}
