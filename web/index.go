package web

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Scalar Kalman filter</title>
<style>
  body { font-family: sans-serif; margin: 20px; }
  canvas { border: 1px solid #ccc; }
  button { margin-bottom: 10px; }
</style>
</head>
<body>
<h3>Estimate vs. iteration step</h3>
<button id="run">Run</button>
<canvas id="chart" width="900" height="450"></canvas>
<script>
var canvas = document.getElementById("chart");
var ctx = canvas.getContext("2d");
var steps = [];
var yLim = 0.2;

function y(v) { return canvas.height / 2 - (v / yLim) * (canvas.height / 2); }
function x(k, n) { return (k / Math.max(n - 1, 1)) * canvas.width; }

function draw() {
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  var n = steps.length;
  if (n === 0) return;

  // sigma bands, widest first
  var fills = ["#9ecae1", "#6baed6", "#3182bd"];
  [3, 2, 1].forEach(function (m, i) {
    ctx.fillStyle = fills[i];
    ctx.beginPath();
    steps.forEach(function (s, k) {
      var yy = y(s.estimate + m * Math.sqrt(s.p));
      k === 0 ? ctx.moveTo(x(k, n), yy) : ctx.lineTo(x(k, n), yy);
    });
    for (var k = n - 1; k >= 0; k--) {
      ctx.lineTo(x(k, n), y(steps[k].estimate - m * Math.sqrt(steps[k].p)));
    }
    ctx.closePath();
    ctx.fill();
  });

  // measurements
  ctx.strokeStyle = "rgba(0,0,0,0.5)";
  steps.forEach(function (s, k) {
    var px = x(k, n), py = y(s.z);
    ctx.beginPath();
    ctx.moveTo(px - 2, py); ctx.lineTo(px + 2, py);
    ctx.moveTo(px, py - 2); ctx.lineTo(px, py + 2);
    ctx.stroke();
  });

  // truth
  ctx.strokeStyle = "#000";
  ctx.beginPath();
  steps.forEach(function (s, k) {
    var yy = y(s.truth);
    k === 0 ? ctx.moveTo(x(k, n), yy) : ctx.lineTo(x(k, n), yy);
  });
  ctx.stroke();

  // estimate
  ctx.strokeStyle = "#d62728";
  ctx.lineWidth = 1.5;
  ctx.beginPath();
  steps.forEach(function (s, k) {
    var yy = y(s.estimate);
    k === 0 ? ctx.moveTo(x(k, n), yy) : ctx.lineTo(x(k, n), yy);
  });
  ctx.stroke();
  ctx.lineWidth = 1;
}

var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function (ev) {
  var msg = JSON.parse(ev.data);
  if (msg.done) { draw(); return; }
  if (msg.step === 0) steps = [];
  steps.push(msg);
  if (steps.length % 25 === 0) draw();
};
ws.onopen = function () { ws.send("run"); };
document.getElementById("run").onclick = function () {
  ws.send("run");
};
</script>
</body>
</html>
`
