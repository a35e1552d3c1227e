package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/utils"
)

// defaultIdentityFiles are tried, in order, when no private key is configured.
var defaultIdentityFiles = []string{"id_ed25519", "id_ecdsa", "id_rsa"}

// NativeRunner runs remote commands with the in-process SSH client.
type NativeRunner struct {
	cfg config.Config
}

// NewNativeRunner creates a NativeRunner for cfg.
func NewNativeRunner(cfg config.Config) *NativeRunner {
	return &NativeRunner{cfg: cfg}
}

// Run connects, executes remoteCommand in a new session and disconnects.
// Dial, handshake and authentication failures are CONNECTION_ERRORs; a bad
// key or known_hosts file is a CONFIG_ERROR.
func (r *NativeRunner) Run(ctx context.Context, remoteCommand string) (*Result, error) {
	auth, closeAgent, err := r.authMethods()
	if err != nil {
		return nil, err
	}
	defer closeAgent()

	hostKeyCallback, err := r.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	clientConfig := &ssh.ClientConfig{
		User:            r.cfg.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
	}

	address := r.cfg.Address()
	log.Debugf("Connecting to %s as %s", address, r.cfg.Username)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, ierrors.NewConnectionError("failed to connect to "+address, err)
	}
	// Unblocks the handshake and the session when ctx is cancelled
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, address, clientConfig)
	if err != nil {
		_ = conn.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("ssh handshake interrupted: %w", ctxErr)
		}
		return nil, ierrors.NewConnectionError("ssh handshake with "+address+" failed", err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)
	defer utils.CloseOrWarn(client, "ssh connection")

	session, err := client.NewSession()
	if err != nil {
		return nil, ierrors.NewConnectionError("failed to open ssh session", err)
	}
	defer func() { _ = session.Close() }()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	log.Debugf("Running %q", remoteCommand)
	runErr := session.Run(remoteCommand)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("remote command interrupted: %w", ctxErr)
	}

	result := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr != nil {
		var exitErr *ssh.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitStatus()
			return result, nil
		}
		return nil, ierrors.NewConnectionError("remote command did not complete", runErr)
	}
	return result, nil
}

// authMethods returns the configured key, or the ssh agent and the default
// identity files when no key is configured. The returned func releases the
// agent connection.
func (r *NativeRunner) authMethods() ([]ssh.AuthMethod, func(), error) {
	noop := func() {}

	if r.cfg.PrivateKeyPath != "" {
		signer, err := loadSigner(utils.ExpandHome(r.cfg.PrivateKeyPath))
		if err != nil {
			return nil, noop, ierrors.NewConfigError("failed to load private key "+r.cfg.PrivateKeyPath, err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, noop, nil
	}

	var methods []ssh.AuthMethod
	closeAgent := noop

	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if agentConn, err := net.Dial("unix", sock); err != nil {
			log.Debugf("Failed to connect to ssh agent at %s: %v", sock, err)
		} else {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(agentConn).Signers))
			closeAgent = func() { utils.CloseOrWarn(agentConn, "ssh agent connection") }
		}
	}

	var signers []ssh.Signer
	for _, name := range defaultIdentityFiles {
		path := filepath.Join(utils.ExpandHome("~/.ssh"), name)
		signer, err := loadSigner(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Debugf("Skipping identity %s: %v", path, err)
			}
			continue
		}
		signers = append(signers, signer)
	}
	if len(signers) > 0 {
		methods = append(methods, ssh.PublicKeys(signers...))
	}

	return methods, closeAgent, nil
}

func (r *NativeRunner) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if !r.cfg.StrictHostKeyChecking {
		return ssh.InsecureIgnoreHostKey(), nil
	}

	path := utils.ExpandHome(r.cfg.KnownHostsFile)
	callback, err := knownhosts.New(path)
	if err != nil {
		return nil, ierrors.NewConfigError("failed to load known hosts "+path, err)
	}
	return callback, nil
}

func loadSigner(path string) (ssh.Signer, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ssh.ParsePrivateKey(pemBytes)
}
